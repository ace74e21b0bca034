package geotext

// IDToString encodes a 64-bit map object ID as one to four UTF-16 units, most
// significant unit first. Leading zero units are dropped; ID 0 is encoded as
// a single zero unit. The units need not form valid UTF-16.
func IDToString(id uint64) *String {
	var units [4]uint16
	n := 0
	for i := 3; i >= 0; i-- {
		u := uint16(id >> (16 * uint(i)))
		if n == 0 && u == 0 && i > 0 {
			continue
		}
		units[n] = u
		n++
	}
	return FromUTF16(units[:n])
}

// StringToID decodes a map object ID created by IDToString. Only the first
// four units of t are used.
func StringToID(t Text) uint64 {
	if IsEmpty(t) {
		return 0
	}
	data := t.Data()
	if len(data) > 4 {
		data = data[:4]
	}
	var id uint64
	for _, u := range data {
		id = id<<16 | uint64(u)
	}
	return id
}
