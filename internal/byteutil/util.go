package byteutil

import "encoding/binary"

// EncodeInt64ToBytes builds a big-endian key so bolt iterates results in
// chronological order.
func EncodeInt64ToBytes(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}
