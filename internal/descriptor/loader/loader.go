package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkgdescriptor "github.com/goliatone/go-schemagen/pkg/descriptor"
)

// Loader implements pkgdescriptor.Loader by delegating to file, fs.FS, or
// HTTP strategies. Construction helpers live in the top-level schemagen
// package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgdescriptor.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgdescriptor.LoaderOptions) pkgdescriptor.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgdescriptor.Source) (pkgdescriptor.Document, error) {
	if src == nil {
		return pkgdescriptor.Document{}, errors.New("descriptor loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgdescriptor.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgdescriptor.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgdescriptor.SourceKindURL:
		if !l.allowHTTP {
			return pkgdescriptor.Document{}, errors.New("descriptor loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("descriptor loader: unsupported source kind")
	}
	if err != nil {
		return pkgdescriptor.Document{}, err
	}

	return pkgdescriptor.NewDocument(src, data)
}
