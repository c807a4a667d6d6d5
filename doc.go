// Package huffile implements a lossless file compressor based on static
// Huffman coding over bytes.
//
// A compressed file is a 1024-byte header holding the 256 byte frequencies
// (4-byte little-endian counters, in byte-value order), followed by the
// bit-packed code stream.  Bits are packed into each byte starting from the
// most significant bit, and the final byte is padded with zero bits.  The
// decoder stops after it has produced as many symbols as the header counts,
// so the padding is never decoded.
//
// Both sides rebuild the same tree from the same header, so the tree itself
// is never stored.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffile
