package ppm

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/SAI-Aghylas/libppm/internal/ir"
)

// Encode writes img as P3 text and returns the number of pixels written.
// On failure the count is 0 and the error has KindWrite.
//
// The header is "P3\n<width> <height>\n255\n". Channels of a pixel are
// separated by one space and pixels by a tab, except that a newline follows
// every width-th pixel, giving one line per row. The output always ends
// with a newline.
func Encode(w io.Writer, img *ir.Image) (int, error) {
	const op = "ppm.encode"

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	buf = append(buf, Magic...)
	buf = append(buf, '\n')
	buf = strconv.AppendInt(buf, int64(img.Width), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(img.Height), 10)
	buf = append(buf, '\n')
	buf = strconv.AppendInt(buf, ir.MaxChannel, 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return 0, &Error{Op: op, Kind: KindWrite, Err: err}
	}

	written := 0
	last := len(img.Pix) - 1
	for i, p := range img.Pix {
		buf = appendPixel(buf[:0], p)
		if (img.Width > 0 && (i+1)%img.Width == 0) || i == last {
			buf = append(buf, '\n')
		} else {
			buf = append(buf, '\t')
		}
		if _, err := bw.Write(buf); err != nil {
			return 0, &Error{Op: op, Kind: KindWrite, Err: err}
		}
		written++
	}

	if err := bw.Flush(); err != nil {
		return 0, &Error{Op: op, Kind: KindWrite, Err: err}
	}
	return written, nil
}

// EncodeFile creates (or truncates) path and writes img to it.
func EncodeFile(path string, img *ir.Image) (int, error) {
	const op = "ppm.encode_file"

	f, err := os.Create(path)
	if err != nil {
		return 0, &Error{Op: op, Kind: KindWrite, Path: path, Err: err}
	}

	n, err := Encode(f, img)
	if err != nil {
		f.Close()
		return 0, withPath(err, path)
	}
	if err := f.Close(); err != nil {
		return 0, &Error{Op: op, Kind: KindWrite, Path: path, Err: err}
	}
	return n, nil
}

func appendPixel(buf []byte, p ir.Pixel) []byte {
	buf = strconv.AppendUint(buf, uint64(p.Red), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(p.Green), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(p.Blue), 10)
	return buf
}
