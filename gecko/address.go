package gecko

// resolveAddress maps a raw tag/address word to its canonical memory
// address: the low 24 bits placed in the 0x80000000 region, bumped by
// 0x01000000 when the record's larger-address flag is set.
func resolveAddress(raw uint32, largerAddress bool) uint32 {
	addr := 0x80000000 | (raw & 0x00FFFFFF)
	if largerAddress {
		addr += 0x01000000
	}
	return addr
}
