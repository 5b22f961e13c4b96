package storage

import (
	"io"

	"m2_studio/internal/usecase/interfaces"
)

// progressReader reports bytes consumed by the uploader.
type progressReader struct {
	r        io.Reader
	total    int64
	sent     int64
	progress interfaces.ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.progress(p.sent, p.total)
	}
	return n, err
}

// progressReadSeeker keeps the body seekable so the SDK can sign and retry.
type progressReadSeeker struct {
	progressReader
	s io.Seeker
}

func (p *progressReadSeeker) Seek(offset int64, whence int) (int64, error) {
	pos, err := p.s.Seek(offset, whence)
	if err == nil {
		p.sent = pos
	}
	return pos, err
}

func newProgressReader(body io.Reader, size int64, progress interfaces.ProgressFunc) io.Reader {
	if progress == nil {
		return body
	}
	if size < 0 {
		size = -1
	}
	base := progressReader{r: body, total: size, progress: progress}
	if rs, ok := body.(io.ReadSeeker); ok {
		return &progressReadSeeker{progressReader: base, s: rs}
	}
	return &base
}
