package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformedRaster is returned when a PGM header or payload cannot be
// decoded.
var ErrMalformedRaster = errors.New("malformed raster")

const pgmMagic = "P5"

// ParsePGM decodes a binary (P5) PGM image. Header tokens are separated by
// whitespace; lines starting with '#' are comments. Pixel bytes are used
// directly as R=G=B with opaque alpha, without maxval scaling.
func ParsePGM(r io.Reader) (*Raster, error) {
	br := bufio.NewReader(r)
	magic, err := nextToken(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRaster, err)
	}
	if magic != pgmMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrMalformedRaster, magic)
	}
	width, err := nextIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("%w: width: %v", ErrMalformedRaster, err)
	}
	height, err := nextIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("%w: height: %v", ErrMalformedRaster, err)
	}
	maxval, err := nextIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("%w: maxval: %v", ErrMalformedRaster, err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrMalformedRaster, width, height)
	}
	if maxval <= 0 || maxval > 255 {
		return nil, fmt.Errorf("%w: maxval %d", ErrMalformedRaster, maxval)
	}

	data := make([]byte, width*height)
	if _, err := io.ReadFull(br, data); err != nil {
		return nil, fmt.Errorf("%w: pixel data: %v", ErrMalformedRaster, err)
	}
	out := New(width, height)
	for i, v := range data {
		o := i * 4
		out.Pix[o] = v
		out.Pix[o+1] = v
		out.Pix[o+2] = v
		out.Pix[o+3] = 0xff
	}
	return out, nil
}

// MarshalPGM writes r as a binary PGM with maxval 255. The gray value is
// taken from the R channel; alpha is dropped.
func MarshalPGM(w io.Writer, r *Raster) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n255\n", pgmMagic, r.Width, r.Height); err != nil {
		return err
	}
	row := make([]byte, r.Width)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			row[x] = r.Pix[(y*r.Width+x)*4]
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func nextToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func nextIntToken(br *bufio.Reader) (int, error) {
	tok, err := nextToken(br)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}
