package ihex

// Checksum computes the 8-bit record checksum.
// The checksum is the two's complement of the byte sum, so that the sum of
// every record byte including the checksum is 0 modulo 256.
//
// The checksum is calculated over COUNT, ADDR, TYPE and DATA.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	// Return 2's complement: invert and add 1
	return ^sum + 1
}
