// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Implements the client side of the management state service protocol: one
// websocket round trip per state path request, with a graceful close
// afterwards.

package mgmt

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultServiceTimeout specifies the time limit for completing a state
	// request, including establishing the websocket connection.
	DefaultServiceTimeout = 30 * time.Second

	// gracefulCloseTimeout bounds how long we wait for the service to
	// acknowledge a websocket close before forcing the connection down.
	gracefulCloseTimeout = 2 * time.Second

	// statePath is the state service's endpoint path below the service base
	// URL.
	statePath = "state"
)

// ClientOptions allows some degree of control over how to talk to the
// management state service.
type ClientOptions struct {
	// BearerToken optionally specifies the bearer token to use when talking
	// to the state service.
	BearerToken string
	// Timeout specifies a time limit for a single state request, including
	// the websocket handshake phase. A zero Timeout means no limit.
	Timeout time.Duration
	// InsecureSkipVerify skips verification of the service's TLS
	// certificate.
	InsecureSkipVerify bool
}

// Client talks to the management state service of a single device.
type Client struct {
	serviceurl *url.URL
	opts       ClientOptions
}

// New returns a new state service client for the service reachable at the
// given URL, consisting of host+port and an optional service path. A URL
// without a scheme defaults to "http".
func New(serviceurl string, opts *ClientOptions) (*Client, error) {
	// First checkpoint: if it doesn't start with the http/s scheme, then go
	// for http.
	if !strings.HasPrefix(serviceurl, "http:") && !strings.HasPrefix(serviceurl, "https://") {
		serviceurl = "http://" + serviceurl
	}
	surl, err := url.Parse(serviceurl)
	if err != nil {
		return nil, err
	}
	// Don't accept fragments and query elements.
	if surl.User != nil || surl.Opaque != "" ||
		surl.RawQuery != "" || surl.Fragment != "" {
		return nil, errors.New("only host name, optional port number and path allowed")
	}
	c := &Client{
		serviceurl: surl,
		opts:       ClientOptions{Timeout: DefaultServiceTimeout},
	}
	if opts != nil {
		c.opts = *opts
	}
	return c, nil
}

// getRequest asks the state service for the value at a single state path.
type getRequest struct {
	Path string `json:"path"`
}

// getResponse carries the state service's answer: either the value at the
// requested path, or the reason why there is none.
type getResponse struct {
	Path  string `json:"path"`
	Value string `json:"value"`
	Error string `json:"error,omitempty"`
}

// Get returns the value stored at the given state path. A path the service
// answers with an error yields a *ServerError.
func (c *Client) Get(statepath string) (string, error) {
	if !strings.HasPrefix(statepath, "/") {
		return "", fmt.Errorf("invalid state path %q: must be absolute", statepath)
	}
	apiurl := *c.serviceurl
	if apiurl.Scheme == "https" {
		apiurl.Scheme = "wss"
	} else {
		apiurl.Scheme = "ws"
	}
	apiurl.Path = path.Join(apiurl.Path, statePath)

	log.Debugf("connecting to state service %q, time limit %s",
		apiurl.String(), c.opts.Timeout)
	wsd := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: c.opts.Timeout,
	}
	if c.opts.InsecureSkipVerify && apiurl.Scheme == "wss" {
		wsd.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	wsheaders := http.Header{}
	if c.opts.BearerToken != "" {
		wsheaders.Set("Authorization", "Bearer "+c.opts.BearerToken)
	}
	wscon, _, err := wsd.Dial(apiurl.String(), wsheaders)
	if err != nil {
		log.Errorf("cannot contact state service via websocket: %s", err.Error())
		return "", fmt.Errorf("cannot contact state service: %w", err)
	}
	defer closeGracefully(wscon)

	if err := wscon.WriteJSON(getRequest{Path: statepath}); err != nil {
		return "", fmt.Errorf("cannot send state request: %w", err)
	}
	if c.opts.Timeout > 0 {
		_ = wscon.SetReadDeadline(time.Now().Add(c.opts.Timeout))
	}
	var resp getResponse
	if err := wscon.ReadJSON(&resp); err != nil {
		return "", fmt.Errorf("cannot read state response: %w", err)
	}
	if resp.Error != "" {
		return "", &ServerError{Path: statepath, Reason: resp.Error}
	}
	return resp.Value, nil
}

// closeGracefully closes a client websocket: it signals the close to the
// service and then drains the connection until the service acknowledges (or
// a close timeout hits), so the underlaying transport connection doesn't get
// torn down mid-close.
func closeGracefully(wscon *websocket.Conn) {
	log.Debug("initiating graceful websocket close")
	_ = wscon.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "ciao"))
	_ = wscon.SetReadDeadline(time.Now().Add(gracefulCloseTimeout))
	for {
		if _, _, err := wscon.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				log.Debugf("graceful websocket close cut short: %s", err.Error())
			}
			break
		}
	}
	wscon.Close()
	log.Debug("websocket closed")
}
