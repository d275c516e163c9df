package utils

// saveKey is the repeating key the game uses to obfuscate its save files.
const saveKey = "key" // 0x6B 0x65 0x79

// SaveKey returns a fresh copy of the save key
func SaveKey() []byte {
	return []byte(saveKey)
}

// XORApply XORs buf in place with a repeating key.
// Applying it twice with the same key restores the original bytes.
func XORApply(buf []byte, key []byte) {
	if len(key) == 0 {
		panic("utils: XOR key must not be empty")
	}
	for i := range buf {
		buf[i] ^= key[i%len(key)]
	}
}
