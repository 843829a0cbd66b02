package serve

import (
	"bufio"
	"io"
	"log"
	"net"
	stdhttp "net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/docroot/config"
	"github.com/indigo-web/docroot/http/mime"
	"github.com/indigo-web/docroot/internal/docfs"
	"github.com/indigo-web/docroot/transport/dummy"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	cfg     *config.Config
	root    docfs.Root
	content map[string]string
}

func newFixture(t *testing.T, withIndex bool) fixture {
	base := t.TempDir()
	www := filepath.Join(base, "www")
	require.NoError(t, os.MkdirAll(filepath.Join(www, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "secret.txt"), []byte("secret"), 0o644))

	content := map[string]string{
		"page.html":     "<h1>" + uniuri.NewLen(64) + "</h1>",
		"data.bin":      uniuri.NewLen(1024),
		"sub/index.css": "body{}",
	}
	if withIndex {
		content["index.html"] = "<h1>index</h1>"
	}

	for name, data := range content {
		require.NoError(t, os.WriteFile(filepath.Join(www, filepath.FromSlash(name)), []byte(data), 0o644))
	}

	cfg := config.Default()
	cfg.Root = www
	require.NoError(t, cfg.Normalize())

	root, err := docfs.New(cfg.Root)
	require.NoError(t, err)

	return fixture{cfg: cfg, root: root, content: content}
}

func (f fixture) do(t *testing.T, request string) (*stdhttp.Response, string, *dummy.Client) {
	client := dummy.NewMockClient([]byte(request))
	Client(f.cfg, f.root, client, log.New(io.Discard, "", 0))

	if len(client.Written()) == 0 {
		return nil, "", client
	}

	method := stdhttp.MethodGet
	if strings.HasPrefix(request, "HEAD ") {
		method = stdhttp.MethodHead
	}

	stdreq, err := stdhttp.NewRequest(method, "/", nil)
	require.NoError(t, err)
	resp, err := stdhttp.ReadResponse(bufio.NewReader(strings.NewReader(client.Written())), stdreq)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body), client
}

func TestStatic(t *testing.T) {
	f := newFixture(t, true)

	t.Run("GET existing file", func(t *testing.T) {
		resp, body, _ := f.do(t, "GET /page.html HTTP/1.1\r\nHost: localhost\r\n\r\n")
		require.Equal(t, 200, resp.StatusCode)
		require.Equal(t, f.content["page.html"], body)
		require.Equal(t, mime.HTML, resp.Header.Get("Content-Type"))
		require.Equal(t, strconv.Itoa(len(body)), resp.Header.Get("Content-Length"))
		require.Equal(t, "docroot", resp.Header.Get("Server"))
		require.True(t, resp.Close)
	})

	t.Run("HEAD existing file", func(t *testing.T) {
		resp, body, client := f.do(t, "HEAD /data.bin HTTP/1.0\r\n\r\n")
		require.Equal(t, 200, resp.StatusCode)
		require.Empty(t, body)
		require.Equal(t, int64(len(f.content["data.bin"])), resp.ContentLength)
		require.True(t, strings.HasSuffix(client.Written(), "\r\n\r\n"))
		require.Equal(t, mime.OctetStream, resp.Header.Get("Content-Type"))
	})

	t.Run("idempotent", func(t *testing.T) {
		first, firstBody, _ := f.do(t, "GET /data.bin HTTP/1.1\r\n\r\n")
		second, secondBody, _ := f.do(t, "GET /data.bin HTTP/1.1\r\n\r\n")
		require.Equal(t, firstBody, secondBody)
		require.Equal(t, first.ContentLength, second.ContentLength)
	})

	t.Run("index", func(t *testing.T) {
		resp, body, _ := f.do(t, "GET / HTTP/1.1\r\n\r\n")
		require.Equal(t, 200, resp.StatusCode)
		require.Equal(t, f.content["index.html"], body)
	})

	t.Run("no index", func(t *testing.T) {
		resp, _, _ := newFixture(t, false).do(t, "GET / HTTP/1.1\r\n\r\n")
		require.Equal(t, 404, resp.StatusCode)
	})

	t.Run("traversal", func(t *testing.T) {
		for _, path := range []string{"/../../etc/passwd", "/../secret.txt", "/sub/../../secret.txt"} {
			resp, body, _ := f.do(t, "GET "+path+" HTTP/1.1\r\n\r\n")
			require.Equal(t, 403, resp.StatusCode, path)
			require.NotContains(t, body, "secret")
			require.Equal(t, mime.HTMLUTF8, resp.Header.Get("Content-Type"))
		}
	})

	t.Run("HEAD error is bodiless", func(t *testing.T) {
		resp, body, _ := f.do(t, "HEAD /missing.html HTTP/1.1\r\n\r\n")
		require.Equal(t, 404, resp.StatusCode)
		require.Empty(t, body)
		require.NotZero(t, resp.ContentLength)
	})

	t.Run("bad request", func(t *testing.T) {
		resp, body, _ := f.do(t, "GET\r\n\r\n")
		require.Equal(t, 400, resp.StatusCode)
		require.Contains(t, body, "400 Bad Request")
	})

	t.Run("unsupported version", func(t *testing.T) {
		resp, _, _ := f.do(t, "GET / HTTP/2.0\r\n\r\n")
		require.Equal(t, 400, resp.StatusCode)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, body, _ := f.do(t, "POST /page.html HTTP/1.1\r\nContent-Length: 3\r\n\r\nabc")
		require.Equal(t, 405, resp.StatusCode)
		require.Contains(t, body, "405 Method Not Allowed")
	})

	t.Run("not found", func(t *testing.T) {
		resp, _, _ := f.do(t, "GET /"+uniuri.New()+" HTTP/1.1\r\n\r\n")
		require.Equal(t, 404, resp.StatusCode)
	})

	t.Run("silent client", func(t *testing.T) {
		resp, _, client := f.do(t, "")
		require.Nil(t, resp)
		require.Empty(t, client.Written())
	})
}

type panickingClient struct {
	*dummy.Client
}

func (panickingClient) Read() ([]byte, error) {
	panic("boom")
}

func TestStaticRecovers(t *testing.T) {
	f := newFixture(t, true)
	client := panickingClient{dummy.NewMockClient()}

	require.NotPanics(t, func() {
		Client(f.cfg, f.root, client, log.New(io.Discard, "", 0))
	})
	require.True(t, strings.HasPrefix(client.Written(), "HTTP/1.1 500 Internal Server Error\r\n"))
}

func TestStaticConn(t *testing.T) {
	f := newFixture(t, true)
	server, peer := net.Pipe()

	done := make(chan struct{})
	go func() {
		Static(f.cfg, f.root, server, log.New(io.Discard, "", 0))
		_ = server.Close()
		close(done)
	}()

	_, err := peer.Write([]byte("GET /sub/index.css HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)

	resp, err := stdhttp.ReadResponse(bufio.NewReader(peer), nil)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "body{}", string(body))
	require.Equal(t, mime.CSS, resp.Header.Get("Content-Type"))
	<-done
}
