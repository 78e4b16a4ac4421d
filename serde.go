package vecshard

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/vecshard/codec"
)

// Frame layout:
//
//	uvarint len | codec name
//	uvarint len | compressor name
//	compressed payload
//
// payload:
//
//	uvarint element count
//	per element: uvarint len | codec bytes
//
// The header is self-describing so a frame can be decoded without knowing
// how it was written; decoding fails with ErrUnknownCodec /
// ErrUnknownCompressor when the named implementation is not registered.

// MarshalShard serializes the shard as a length-prefixed ordered sequence
// of elements. The shard is not consumed.
func MarshalShard[T any](s *Shard[T], optFns ...Option) ([]byte, error) {
	opts := s.opts
	if len(optFns) > 0 {
		opts = applyOptions(optFns)
	}

	payload := binary.AppendUvarint(nil, uint64(s.Len()))
	for i, v := range s.Items() {
		b, err := opts.codec.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal element %d: %w", i, err)
		}
		payload = binary.AppendUvarint(payload, uint64(len(b)))
		payload = append(payload, b...)
	}

	compressed, err := opts.compressor.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	out := appendLenPrefixed(nil, opts.codec.Name())
	out = appendLenPrefixed(out, opts.compressor.Name())
	return append(out, compressed...), nil
}

// UnmarshalShard materializes a slice from a serialized frame and wraps it
// into a fresh shard. The options configure the returned shard; codec and
// compressor are selected from the frame header, not from the options.
func UnmarshalShard[T any](data []byte, optFns ...Option) (*Shard[T], error) {
	opts := applyOptions(optFns)

	codecName, data, err := readLenPrefixed(data)
	if err != nil {
		return nil, err
	}
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codecName)
	}

	compName, data, err := readLenPrefixed(data)
	if err != nil {
		return nil, err
	}
	comp, ok := codec.CompressorByName(compName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompressor, compName)
	}

	payload, err := comp.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	count, n := binary.Uvarint(payload)
	if n <= 0 {
		return nil, fmt.Errorf("%w: missing element count", ErrCorruptFrame)
	}
	payload = payload[n:]
	if count > uint64(len(payload)) {
		// every element costs at least one length byte
		return nil, fmt.Errorf("%w: element count %d exceeds payload", ErrCorruptFrame, count)
	}

	elems := make([]T, 0, count)
	for i := uint64(0); i < count; i++ {
		size, n := binary.Uvarint(payload)
		if n <= 0 || uint64(len(payload[n:])) < size {
			return nil, fmt.Errorf("%w: truncated element %d", ErrCorruptFrame, i)
		}
		var v T
		if err := c.Unmarshal(payload[n:n+int(size)], &v); err != nil {
			return nil, fmt.Errorf("unmarshal element %d: %w", i, err)
		}
		elems = append(elems, v)
		payload = payload[n+int(size):]
	}

	return wrap(elems, opts), nil
}

func appendLenPrefixed(dst []byte, s string) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(s)))
	return append(dst, s...)
}

func readLenPrefixed(data []byte) (string, []byte, error) {
	size, n := binary.Uvarint(data)
	if n <= 0 || uint64(len(data[n:])) < size {
		return "", nil, fmt.Errorf("%w: truncated header", ErrCorruptFrame)
	}
	return string(data[n : n+int(size)]), data[n+int(size):], nil
}
