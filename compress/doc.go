// Package compress provides container codecs for term dump files.
//
// Captured payloads are often archived compressed. This package wraps and
// unwraps whole files; it never looks inside a payload and has nothing to do
// with the external term format's own compressed tag, which the codec
// rejects.
//
// Every codec produces a self-identifying stream format, so Detect can pick
// the right Decompressor from the leading magic bytes:
//
//	Zstd  28 b5 2f fd        (zstd frame)
//	S2    ff 06 00 00 S2sTwO (s2 stream)
//	LZ4   04 22 4d 18        (lz4 frame)
//
// Anything else, including a raw payload starting with the version marker
// 0x83, is treated as uncompressed.
//
// # Usage
//
//	codec, err := compress.GetCodec(compress.Detect(data))
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(data)
//
// # Thread Safety
//
// All codecs in this package are safe for concurrent use. Encoders and
// decoders are pooled internally.
package compress
