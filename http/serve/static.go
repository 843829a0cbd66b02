package serve

import (
	"log"
	"net"

	"github.com/indigo-web/docroot/config"
	"github.com/indigo-web/docroot/http"
	"github.com/indigo-web/docroot/http/status"
	"github.com/indigo-web/docroot/internal/docfs"
	"github.com/indigo-web/docroot/internal/protocol/http1"
	"github.com/indigo-web/docroot/transport"
)

// respBuffPrealloc covers the head and a small body; bigger bodies grow the buffer.
const respBuffPrealloc = 1024

// Static serves exactly one request on the connection. The connection isn't closed,
// the caller owns it.
func Static(cfg *config.Config, root docfs.Root, conn net.Conn, logger *log.Logger) {
	client := transport.NewClient(conn, cfg.NET.ReadTimeout, make([]byte, cfg.NET.ReadBufferSize))
	Client(cfg, root, client, logger)
}

// Client is Static working on top of an already constructed transport client.
func Client(cfg *config.Config, root docfs.Root, client transport.Client, logger *log.Logger) {
	h := handler{
		cfg:        cfg,
		root:       root,
		client:     client,
		logger:     logger,
		serializer: http1.NewSerializer(client, cfg.Server, make([]byte, 0, respBuffPrealloc)),
	}

	defer h.catch()
	h.serve()
}

type handler struct {
	cfg        *config.Config
	root       docfs.Root
	client     transport.Client
	logger     *log.Logger
	serializer *http1.Serializer
	responded  bool
}

func (h *handler) serve() {
	head := http1.ReadHead(h.client, h.cfg.NET)
	if len(head) == 0 {
		// the client has gone without saying anything
		return
	}

	request, err := http1.ParseRequestLine(head)
	if err != nil {
		h.fail(err, false)
		return
	}

	target, err := h.root.Resolve(request.Path)
	if err != nil {
		h.fail(err, request.IsHead())
		return
	}

	body, err := target.Read()
	if err != nil {
		h.logger.Printf("%s: %s %s: %v", h.client.Remote(), request.Method, request.Path, err)
		h.fail(err, request.IsHead())
		return
	}

	response := http.NewResponse().ContentType(target.ContentType)
	if request.IsHead() {
		response.ContentLength(len(body))
	} else {
		response.Bytes(body)
	}

	h.respond(response, request.IsHead())
}

func (h *handler) fail(err error, bodiless bool) {
	h.responded = true
	// best-effort: the connection is torn down right after either way
	_ = h.serializer.WriteError(err, bodiless)
}

func (h *handler) respond(response *http.Response, bodiless bool) {
	h.responded = true
	_ = h.serializer.Write(response, bodiless)
}

// catch turns any panic into 500 Internal Server Error, unless something was
// already sent.
func (h *handler) catch() {
	if r := recover(); r != nil {
		h.logger.Printf("%s: recovered from panic: %v", h.client.Remote(), r)

		if !h.responded {
			h.fail(status.ErrInternalServerError, false)
		}
	}
}
