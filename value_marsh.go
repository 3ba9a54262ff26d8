package fplib

import (
	"encoding/binary"
	"fmt"
)

const valueGobVersion byte = 1

// GobEncode implements gob.GobEncoder. The wire format is a version byte
// followed by intBits, fracBits (as varints) and the raw limbs.
func (v Value) GobEncode() ([]byte, error) {
	buf := make([]byte, 1, 1+2*binary.MaxVarintLen32+len(v.limb)*4)
	buf[0] = valueGobVersion
	buf = binary.AppendVarint(buf, int64(v.intBits))
	buf = binary.AppendVarint(buf, int64(v.fracBits))
	for _, w := range v.limb {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return buf, nil
}

// GobDecode implements gob.GobDecoder.
func (v *Value) GobDecode(data []byte) error {
	if len(data) == 0 || data[0] != valueGobVersion {
		return &Error{Op: "GobDecode", Kind: ParseError, Msg: "unsupported version"}
	}
	data = data[1:]
	intBits, n := binary.Varint(data)
	if n <= 0 {
		return &Error{Op: "GobDecode", Kind: ParseError, Msg: "malformed intBits"}
	}
	data = data[n:]
	fracBits, n := binary.Varint(data)
	if n <= 0 {
		return &Error{Op: "GobDecode", Kind: ParseError, Msg: "malformed fracBits"}
	}
	data = data[n:]
	nl := numLimbs(int32(intBits) + int32(fracBits))
	if len(data) < nl*4 {
		return &Error{Op: "GobDecode", Kind: ParseError, Msg: "truncated limb data"}
	}
	limb := make([]uint32, nl)
	for i := range limb {
		limb[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	v.intBits = int32(intBits)
	v.fracBits = int32(fracBits)
	v.limb = limb
	return nil
}

// MarshalText implements encoding.TextMarshaler, rendering v as
// "<intBits>,<fracBits>,<hex>".
func (v Value) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d,%d,%s", v.intBits, v.fracBits, v.ToHexString())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the format
// produced by MarshalText.
func (v *Value) UnmarshalText(text []byte) error {
	var intBits, fracBits int32
	var hex string
	n, err := fmt.Sscanf(string(text), "%d,%d,%s", &intBits, &fracBits, &hex)
	if err != nil || n != 3 {
		return &Error{Op: "UnmarshalText", Kind: ParseError, Msg: "malformed text"}
	}
	nv := New(intBits, fracBits)
	if !nv.setFromHexString(hex) {
		return &Error{Op: "UnmarshalText", Kind: ParseError, Msg: "malformed hex payload"}
	}
	signExtend(nv.limb, nv.width())
	*v = nv
	return nil
}
