package nef

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/R3E-Network/NeoRust-sub000/pkg/config"
	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/hash"
	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
)

// NEO Executable Format 3 (NEF3)
// Standard: https://github.com/neo-project/proposals/pull/121/files
// Implementation: https://github.com/neo-project/neo/blob/v3.0.0-preview4/src/neo/SmartContract/NefFile.cs#L8
// +------------+-----------+------------------------------------------------------------+
// |   Field    |  Length   |                          Comment                           |
// +------------+-----------+------------------------------------------------------------+
// | Magic      | 4 bytes   | Magic header                                               |
// | Compiler   | 64 bytes  | Compiler name and version                                  |
// +------------+-----------+------------------------------------------------------------+
// | Source     | Var bytes | Source file URL.                                           |
// +------------+-----------+------------------------------------------------------------+
// | Reserved   | 1 byte    | Reserved for extensions. Must be 0.                        |
// | Tokens     | Var array | List of method tokens                                      |
// | Reserved   | 2-bytes   | Reserved for extensions. Must be 0.                        |
// | Script     | Var bytes | Var bytes for the payload                                  |
// +------------+-----------+------------------------------------------------------------+
// | Checksum   | 4 bytes   | First four bytes of double SHA256 hash of the header       |
// +------------+-----------+------------------------------------------------------------+

const (
	// Magic is a magic File header constant.
	Magic uint32 = 0x3346454E
	// MaxSourceURLLength is the maximum allowed source URL length.
	MaxSourceURLLength = 255
	// MaxScriptLength is the maximum allowed contract script length.
	MaxScriptLength = 512 * 1024
	// MaxMethodTokens is the maximum number of method tokens in a file.
	MaxMethodTokens = 128
	// compilerFieldSize is the length of `Compiler` File header field in bytes.
	compilerFieldSize = 64
	// checksumSize is the length of the trailing checksum field.
	checksumSize = 4
)

// ErrChecksumMismatch is returned when the file checksum doesn't match its
// contents.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// File represents a compiled contract file structure according to the NEF3 standard.
type File struct {
	Header
	Source   string        `json:"source"`
	Tokens   []MethodToken `json:"tokens"`
	Script   []byte        `json:"script"`
	Checksum uint32        `json:"checksum"`
}

// Header represents a File header.
type Header struct {
	Magic    uint32 `json:"magic"`
	Compiler string `json:"compiler"`
}

// NewFile returns a new NEF3 file with the script specified.
func NewFile(script []byte) (*File, error) {
	file := &File{
		Header: Header{
			Magic:    Magic,
			Compiler: "neotx-" + config.Version,
		},
		Tokens: []MethodToken{},
		Script: script,
	}
	if len(file.Compiler) > compilerFieldSize {
		return nil, errors.New("too long compiler field")
	}
	file.Checksum = file.CalculateChecksum()
	return file, nil
}

// EncodeBinary implements the io.Serializable interface.
func (h *Header) EncodeBinary(w *io.BinWriter) {
	w.WriteU32LE(h.Magic)
	if len(h.Compiler) > compilerFieldSize {
		w.Err = errors.New("invalid compiler name length")
		return
	}
	var b = make([]byte, compilerFieldSize)
	copy(b, []byte(h.Compiler))
	w.WriteBytes(b)
}

// DecodeBinary implements the io.Serializable interface.
func (h *Header) DecodeBinary(r *io.BinReader) {
	h.Magic = r.ReadU32LE()
	if r.Err != nil {
		r.Err = fmt.Errorf("magic: %w", r.Err)
		return
	}
	if h.Magic != Magic {
		r.Err = fmt.Errorf("magic: invalid value %#x", h.Magic)
		return
	}
	buf := make([]byte, compilerFieldSize)
	r.ReadBytes(buf)
	if r.Err != nil {
		r.Err = fmt.Errorf("compiler: %w", r.Err)
		return
	}
	h.Compiler = strings.TrimRight(string(buf), "\x00")
}

// CalculateChecksum returns first 4 bytes of double-SHA256 of the serialized
// file without its checksum converted to uint32. It panics if the file can't
// be serialized (too long compiler or source fields).
func (n *File) CalculateChecksum() uint32 {
	bb, err := n.Bytes()
	if err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint32(hash.Checksum(bb[:len(bb)-checksumSize]))
}

// EncodeBinary implements the io.Serializable interface.
func (n *File) EncodeBinary(w *io.BinWriter) {
	n.Header.EncodeBinary(w)
	if len(n.Source) > MaxSourceURLLength {
		w.Err = errors.New("source url too long")
		return
	}
	w.WriteString(n.Source)
	w.WriteB(0)
	io.WriteArray(w, n.Tokens)
	w.WriteU16LE(0)
	w.WriteVarBytes(n.Script)
	w.WriteU32LE(n.Checksum)
}

var (
	errInvalidReserved = errors.New("reserved bytes must be 0")
	errEmptyScript     = errors.New("empty script")
)

// DecodeBinary implements the io.Serializable interface.
func (n *File) DecodeBinary(r *io.BinReader) {
	n.Header.DecodeBinary(r)
	if r.Err != nil {
		return
	}
	n.Source = r.ReadString(MaxSourceURLLength)
	if r.Err != nil {
		r.Err = fmt.Errorf("source: %w", r.Err)
		return
	}
	reservedB := r.ReadB()
	if r.Err == nil && reservedB != 0 {
		r.Err = fmt.Errorf("reserved byte: %w", errInvalidReserved)
		return
	}
	n.Tokens = io.ReadArray[MethodToken](r, MaxMethodTokens)
	if r.Err != nil {
		r.Err = fmt.Errorf("tokens: %w", r.Err)
		return
	}
	reserved := r.ReadU16LE()
	if r.Err == nil && reserved != 0 {
		r.Err = fmt.Errorf("reserved bytes: %w", errInvalidReserved)
		return
	}
	n.Script = r.ReadVarBytes(MaxScriptLength)
	if r.Err != nil {
		r.Err = fmt.Errorf("script: %w", r.Err)
		return
	}
	if len(n.Script) == 0 {
		r.Err = fmt.Errorf("script: %w", errEmptyScript)
		return
	}
	n.Checksum = r.ReadU32LE()
	if r.Err != nil {
		r.Err = fmt.Errorf("checksum: %w", r.Err)
		return
	}
	checksum := n.CalculateChecksum()
	if checksum != n.Checksum {
		r.Err = fmt.Errorf("checksum: %w (expected %#x, got %#x)", ErrChecksumMismatch, checksum, n.Checksum)
	}
}

// Bytes returns a byte array with a serialized NEF File.
func (n File) Bytes() ([]byte, error) {
	buf := io.NewBufBinWriter()
	n.EncodeBinary(buf.BinWriter)
	if buf.Err != nil {
		return nil, buf.Err
	}
	return buf.Bytes(), nil
}

// FileFromBytes returns a NEF File deserialized from the given bytes.
func FileFromBytes(source []byte) (File, error) {
	result := File{}
	r := io.NewBinReaderFromBuf(source)
	result.DecodeBinary(r)
	r.CheckEOF()
	if r.Err != nil {
		return result, r.Err
	}
	return result, nil
}
