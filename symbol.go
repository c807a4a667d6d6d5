package huffile

// Symbol is a byte value being coded.
type Symbol = byte

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// maxBitsPerCode bounds the length of any code.  A tree over at most 256
// leaves is at most 255 levels deep.
const maxBitsPerCode = NumSymbols - 1

// counterSize is the serialized width of one histogram counter, in bytes.
const counterSize = 4

// HeaderSize is the size of the serialized histogram.
const HeaderSize = NumSymbols * counterSize
