// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

import (
	"bytes"
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/saferwall/swf/internal/swflog"
)

// Signature identifies the SWF container's compression scheme.
type Signature [3]byte

var (
	signatureUncompressed = Signature{'F', 'W', 'S'}
	signatureZlib         = Signature{'C', 'W', 'S'}
	signatureLZMA         = Signature{'Z', 'W', 'S'}
)

// Options configures a Parse call. The zero value is ready to use: no
// size caps beyond the package defaults, and a no-op logger.
type Options struct {
	// SkipActionBodies is accepted but not read by any decoder: nested
	// AVM1 action lists (DoAction, DoInitAction, PlaceObject2/3 clip
	// actions) are always decoded in full.
	SkipActionBodies bool

	// MaxTagCount bounds how many top-level tags Parse will read, by
	// default (MaxDefaultTagCount). On reaching it Parse logs a warning
	// and stops, keeping the tags read so far, without returning an
	// error. Guards against a crafted file with an End tag that never
	// arrives.
	MaxTagCount uint32

	// MaxSpriteDepth is defaulted (MaxDefaultSpriteDepth) but not read by
	// any decoder: nested DefineSprite tags recurse with no depth limit.
	MaxSpriteDepth uint32

	// Logger receives decode-time diagnostics. Defaults to a no-op logger.
	Logger swflog.Logger
}

// Package size defaults, mirrored from the teacher's MaxDefaultCOFFSymbolsCount
// style of named constants rather than bare numeric literals at call sites.
const (
	MaxDefaultTagCount    = 1 << 20
	MaxDefaultSpriteDepth = 256
)

// File is a fully decoded SWF movie: its header, frame metadata, and
// flat top-level tag stream (DefineSprite tags carry their own nested
// stream).
type File struct {
	Signature  Signature `json:"signature"`
	Version    uint8     `json:"version"`
	FileLength uint32    `json:"file_length"`
	FrameSize  Rectangle `json:"frame_size"`
	FrameRate  uint16    `json:"frame_rate"`
	FrameCount uint16    `json:"frame_count"`
	Tags       []Tag     `json:"tags"`

	data   []byte
	mapped mmap.MMap
	f      *os.File
	opts   *Options
	logger swflog.Logger
}

func newOptions(opts *Options) *Options {
	if opts == nil {
		opts = &Options{}
	}
	o := *opts
	if o.MaxTagCount == 0 {
		o.MaxTagCount = MaxDefaultTagCount
	}
	if o.MaxSpriteDepth == 0 {
		o.MaxSpriteDepth = MaxDefaultSpriteDepth
	}
	if o.Logger == nil {
		o.Logger = swflog.NewNop()
	}
	return &o
}

// New instantiates a File given a path, memory-mapping its contents.
func New(name string, opts *Options) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	o := newOptions(opts)
	return &File{data: data, mapped: data, f: f, opts: o, logger: o.Logger}, nil
}

// NewBytes instantiates a File from an in-memory buffer.
func NewBytes(data []byte, opts *Options) (*File, error) {
	o := newOptions(opts)
	return &File{data: data, opts: o, logger: o.Logger}, nil
}

// Close releases the memory-mapped file backing, if any.
func (file *File) Close() error {
	if file.mapped != nil {
		_ = file.mapped.Unmap()
	}
	if file.f != nil {
		return file.f.Close()
	}
	return nil
}

const headerPrefixLength = 8 // signature(3) + version(1) + file_length(4)

// Parse decodes the SWF header, decompresses the body if needed, and
// decodes the frame metadata and tag stream (§4.7).
func (file *File) Parse() error {
	if len(file.data) < headerPrefixLength {
		return ErrStreamExhaustion
	}
	copy(file.Signature[:], file.data[0:3])
	file.Version = file.data[3]
	file.FileLength = uint32(file.data[4]) | uint32(file.data[5])<<8 |
		uint32(file.data[6])<<16 | uint32(file.data[7])<<24

	rest := file.data[headerPrefixLength:]
	var body []byte
	switch file.Signature {
	case signatureUncompressed:
		body = rest
	case signatureZlib:
		decoded, err := decompressZlib(bytes.NewReader(rest))
		if err != nil {
			file.logger.Errorf("zlib decompression failed: %v", err)
			return err
		}
		body = decoded
	case signatureLZMA:
		if len(rest) < 9 {
			return ErrStreamExhaustion
		}
		var props [5]byte
		copy(props[:], rest[4:9])
		decoded, err := decompressLZMA(props, rest[9:], file.FileLength-headerPrefixLength)
		if err != nil {
			file.logger.Errorf("lzma decompression failed: %v", err)
			return err
		}
		body = decoded
	default:
		return ErrInvalidSignature
	}

	if uint32(len(body)) != file.FileLength-headerPrefixLength {
		file.logger.Warnf("declared file_length %d does not match decompressed size %d",
			file.FileLength, uint32(len(body))+headerPrefixLength)
		return ErrUnmatchedFileLength
	}

	s := NewBitStream(body)
	var err error
	if file.FrameSize, err = readRectangle(s); err != nil {
		return err
	}
	if file.FrameRate, err = s.ReadUint16(); err != nil {
		return err
	}
	if file.FrameCount, err = s.ReadUint16(); err != nil {
		return err
	}

	for uint32(len(file.Tags)) < file.opts.MaxTagCount {
		tag, err := readTag(s, file.Version)
		if err != nil {
			return err
		}
		file.Tags = append(file.Tags, tag)
		if tag.Header.Code == TagEnd {
			return nil
		}
	}
	file.logger.Warnf("tag count exceeded MaxTagCount (%d) without an End tag", file.opts.MaxTagCount)
	return nil
}
