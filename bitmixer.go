package automaton

func mix(key int) int {
	return mix32(key)
}

// mix32 is the 32-bit finalization step of MurmurHash3. It spreads small, dense state
// indices across the whole hash range so that summing them stays well distributed.
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}
