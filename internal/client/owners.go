// Package client es el cliente Go tipado del endpoint de owners.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"time"

	"petclinic/internal/domain/owners"
	"petclinic/internal/platform/httpclient"
)

// EndpointError es un error devuelto por el servidor (hubo respuesta).
// Las fallas de red, en cambio, cumplen errors.Is(err, httpclient.ErrTransport).
type EndpointError struct {
	Status  int
	Type    string
	Message string
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Type, e.Status, e.Message)
}

// OwnerEndpoint invoca /connect/OwnerEndpoint/{method}.
type OwnerEndpoint struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*OwnerEndpoint, error) {
	c, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &OwnerEndpoint{http: c}, nil
}

// WithBearer devuelve una copia que manda Authorization: Bearer token en cada llamada.
// El cliente original no se modifica, así que es seguro usarlo con llamadas en curso.
func (c *OwnerEndpoint) WithBearer(token string) *OwnerEndpoint {
	hc := *c.http
	hc.Headers = maps.Clone(c.http.Headers)
	if hc.Headers == nil {
		hc.Headers = map[string]string{}
	}
	hc.Headers["Authorization"] = "Bearer " + token
	return &OwnerEndpoint{http: &hc}
}

func (c *OwnerEndpoint) FindByLastName(ctx context.Context, lastName string) ([]owners.Owner, error) {
	out := []owners.Owner{}
	if err := c.call(ctx, "findByLastName", map[string]any{"lastName": lastName}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID devuelve nil si el servidor responde null.
func (c *OwnerEndpoint) FindByID(ctx context.Context, id int) (*owners.Owner, error) {
	var out *owners.Owner
	if err := c.call(ctx, "findById", map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *OwnerEndpoint) Save(ctx context.Context, o owners.Owner) (int, error) {
	var id int
	if err := c.call(ctx, "save", map[string]any{"owner": o}, &id); err != nil {
		return 0, err
	}
	return id, nil
}

func (c *OwnerEndpoint) call(ctx context.Context, method string, params, out any) error {
	err := c.http.PostJSON(ctx, "/connect/"+owners.EndpointName+"/"+method, params, out)

	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		return toEndpointError(he)
	}
	return err
}

func toEndpointError(he *httpclient.HTTPError) *EndpointError {
	e := &EndpointError{Status: he.StatusCode}

	var body struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if json.Unmarshal(he.Body, &body) == nil && body.Type != "" {
		e.Type = body.Type
		e.Message = body.Message
		return e
	}

	e.Type = http.StatusText(he.StatusCode)
	e.Message = string(he.Body)
	return e
}
