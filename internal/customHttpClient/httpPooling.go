package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/akolanti/StudyAPI/internal/config"
)

var (
	once   sync.Once
	client *http.Client
)

// GetPooledClient is shared by the LLM SDKs so calls reuse warm connections.
func GetPooledClient() *http.Client {
	once.Do(func() {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.MaxIdleConns = config.MaxIdleConns
		transport.MaxIdleConnsPerHost = config.MaxIdleConnsPerHost
		transport.IdleConnTimeout = config.IdleConnTimeout

		client = &http.Client{
			Transport: transport,
			Timeout:   config.LLMClientTimeout,
		}
	})
	return client
}
