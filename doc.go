// Package wavelink transmits short data payloads over an acoustic channel.
//
// The package reads and writes RIFF/WAVE containers, reduces multi-channel
// audio to a single channel, and prepares sample streams for the external
// FSK modem engine (see the modem subpackage) that performs the actual
// modulation and demodulation.
//
// The transmit pipeline is: payload bytes -> modem encode -> Encode (WAV).
// The receive pipeline is: Decode (WAV) -> Downmix -> modem decode.
//
// Supported sample encodings are 8-bit unsigned PCM, 16-bit signed PCM, and
// 32-bit IEEE float. Written files are always mono with a canonical 44-byte
// header.
package wavelink
