package inst

// Decoder extracts the rs1/rs2/rd fields and the sign-extended immediate
// out of a raw 32-bit instruction word, given its format.
type Decoder struct {
	raw    uint32
	format Format
}

// NewDecoder returns a decoder for raw bits under the given format.
func NewDecoder(raw uint32, format Format) Decoder {
	return Decoder{raw: raw, format: format}
}

func bits(raw uint32, hi, lo uint) uint32 {
	width := hi - lo + 1
	mask := uint32(1)<<width - 1
	return (raw >> lo) & mask
}

// RS1 returns bits[19:15], zero when the format carries no source register.
func (d Decoder) RS1() uint32 {
	switch d.format {
	case FormatU, FormatJ:
		return 0
	default:
		return bits(d.raw, 19, 15)
	}
}

// RS2 returns bits[24:20], zero when the format carries no second source.
func (d Decoder) RS2() uint32 {
	switch d.format {
	case FormatR, FormatS, FormatB:
		return bits(d.raw, 24, 20)
	default:
		return 0
	}
}

// RD returns bits[11:7], zero when the format carries no destination.
func (d Decoder) RD() uint32 {
	switch d.format {
	case FormatS, FormatB:
		return 0
	default:
		return bits(d.raw, 11, 7)
	}
}

// signExtend sign-extends the low `width` bits of v to a full 32-bit value.
func signExtend(v uint32, width uint) uint32 {
	shift := 32 - width
	return uint32(int32(v<<shift) >> shift)
}

// Immediate returns the sign-extended immediate for the decoder's format,
// zero for R-format.
func (d Decoder) Immediate() uint32 {
	raw := d.raw
	switch d.format {
	case FormatR:
		return 0
	case FormatI:
		return signExtend(bits(raw, 31, 20), 12)
	case FormatS:
		imm := (bits(raw, 31, 25) << 5) | bits(raw, 11, 7)
		return signExtend(imm, 12)
	case FormatB:
		imm := (bits(raw, 31, 31) << 12) |
			(bits(raw, 7, 7) << 11) |
			(bits(raw, 30, 25) << 5) |
			(bits(raw, 11, 8) << 1)
		return signExtend(imm, 13)
	case FormatU:
		return bits(raw, 31, 12) << 12
	case FormatJ:
		imm := (bits(raw, 31, 31) << 20) |
			(bits(raw, 19, 12) << 12) |
			(bits(raw, 20, 20) << 11) |
			(bits(raw, 30, 21) << 1)
		return signExtend(imm, 21)
	default:
		return 0
	}
}
