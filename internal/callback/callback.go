// Package callback delivers change notifications to the device services that
// own a piece of metadata. Delivery is strictly best-effort: every dispatch
// runs on its own goroutine, failures are logged and discarded, and the
// triggering operation never waits for or learns about the outcome.
package callback

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/edgefleet-io/edgefleet/internal/models"
	"github.com/edgefleet-io/edgefleet/internal/util"
	"go.uber.org/zap"
)

// Change is the kind of mutation a notification reports.
type Change string

const (
	ChangeCreate Change = "CREATE"
	ChangeUpdate Change = "UPDATE"
	ChangeDelete Change = "DELETE"
)

// Method returns the HTTP verb matching the change kind.
func (c Change) Method() string {
	switch c {
	case ChangeCreate:
		return http.MethodPost
	case ChangeDelete:
		return http.MethodDelete
	default:
		return http.MethodPut
	}
}

const DefaultTimeout = 5 * time.Second

type Config struct {
	// Timeout bounds each outbound callback attempt. Zero means
	// DefaultTimeout.
	Timeout time.Duration
}

// Dispatcher fans a CallbackAlert out to a set of owning device services.
type Dispatcher struct {
	logger *zap.SugaredLogger
	client *http.Client
	wg     sync.WaitGroup
}

func NewDispatcher(logger *zap.SugaredLogger, cfg Config) *Dispatcher {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{
		logger: logger,
		client: &http.Client{Timeout: timeout},
	}
}

// Notify delivers one alert per owner and returns immediately. Owners with a
// missing or malformed Addressable are skipped with a log line.
func (d *Dispatcher) Notify(owners []models.DeviceService, subject models.CallbackSubject, id string, change Change) {
	if len(owners) == 0 {
		return
	}
	body, err := json.Marshal(models.CallbackAlert{Type: subject, ID: id})
	if err != nil {
		d.logger.Errorf("failed to encode callback alert for %s %s: %v", subject, id, err)
		return
	}
	for _, owner := range owners {
		owner := owner
		util.GoWithWaitGroup(&d.wg, func() {
			d.deliver(owner, body, change)
		})
	}
}

// Wait blocks until every dispatched delivery has finished. Mutating
// operations never call this; it exists for tests and shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(owner models.DeviceService, body []byte, change Change) {
	url, err := CallbackURL(owner.Addressable)
	if err != nil {
		d.logger.Infof("skipping callback to device service %s: %v", owner.Name, err)
		return
	}
	req, err := http.NewRequest(change.Method(), url, bytes.NewReader(body))
	if err != nil {
		d.logger.Infof("skipping callback to device service %s: %v", owner.Name, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Warnf("callback to device service %s (%s) failed: %v", owner.Name, url, err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	// The response code is advisory only.
	d.logger.Debugf("callback %s %s to device service %s returned %d", change.Method(), url, owner.Name, resp.StatusCode)
}

// CallbackURL builds the callback endpoint from a device service's
// Addressable.
func CallbackURL(a *models.Addressable) (string, error) {
	if a == nil {
		return "", fmt.Errorf("device service has no addressable")
	}
	if a.Protocol == "" || a.Address == "" {
		return "", fmt.Errorf("addressable %q has no protocol or address", a.Name)
	}
	url := fmt.Sprintf("%s://%s:%d%s", strings.ToLower(a.Protocol), a.Address, a.Port, a.Path)
	return url, nil
}
