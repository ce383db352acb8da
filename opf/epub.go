package opf

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/reoring/dcmeta"
	"github.com/spf13/afero"
)

const containerPath = "META-INF/container.xml"

// ErrNoRootfile is returned when container.xml names no package document.
var ErrNoRootfile = errors.New("opf: container has no rootfile")

type container struct {
	Rootfiles []struct {
		FullPath  string `xml:"full-path,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"rootfiles>rootfile"`
}

// DecodeEPUB locates the package document of an EPUB archive through
// META-INF/container.xml and decodes its metadata block.
func DecodeEPUB(r io.ReaderAt, size int64, opts ...Option) ([]dcmeta.Element, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening epub archive: %w", err)
	}
	root, err := rootfile(zr)
	if err != nil {
		return nil, err
	}
	f, err := zr.Open(root)
	if err != nil {
		return nil, fmt.Errorf("opening package document %s: %w", root, err)
	}
	defer f.Close()
	return Decode(f, opts...)
}

// DecodeEPUBFile opens an EPUB archive on fsys and decodes it.
func DecodeEPUBFile(fsys afero.Fs, path string, opts ...Option) ([]dcmeta.Element, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening epub: %w", err)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat epub: %w", err)
	}
	return DecodeEPUB(f, st.Size(), opts...)
}

func rootfile(zr *zip.Reader) (string, error) {
	f, err := zr.Open(containerPath)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", containerPath, err)
	}
	defer f.Close()

	var c container
	if err := xml.NewDecoder(f).Decode(&c); err != nil {
		return "", parseError(err, 0)
	}
	for _, rf := range c.Rootfiles {
		if rf.FullPath == "" {
			continue
		}
		if rf.MediaType == "" || rf.MediaType == "application/oebps-package+xml" {
			// zip.Reader.Open wants an unrooted, cleaned fs path.
			return strings.TrimPrefix(path.Clean("/"+rf.FullPath), "/"), nil
		}
	}
	return "", ErrNoRootfile
}
