// Package huffman implements a lossless compressor based on static Huffman
// codes.
//
// Compression takes two passes over a rewindable Source: the first counts
// byte frequencies, the second writes each byte's code.  The compressed
// stream is self-describing:
//
//     32 bits   Magic (0xface8201)
//     tree      preorder; leaf = 1 + 9-bit symbol, internal = 0 + left + right
//     payload   the code of every input byte, then the code of EOF
//     padding   zero bits up to a byte boundary
//
// Symbol 256 (EOF) never occurs in the input.  It is counted exactly once so
// that it always has a code, and decompression stops when it sees that code.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
