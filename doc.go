// Package huffman builds prefix-free binary codes (Huffman codes) from
// per-symbol frequency tables, and transcodes text to and from the
// delimiter-separated code streams those codes define.
//
// The pipeline is: FrequencyTable → BuildTree → Codebook → Encoder /
// Decoder.  Codes travel as runs of ASCII '0' and '1' separated by a
// single space, not as packed bits.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
