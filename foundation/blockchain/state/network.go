package state

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/timo-juhani/blockchain/foundation/blockchain/peer"
)

const baseURL = "http://%s/v1/node"

// httpFetcher retrieves chains from peers over the node's private API.
// This is the default ChainFetcher when none is configured.
type httpFetcher struct {
	client *http.Client
}

func newHTTPFetcher() *httpFetcher {
	return &httpFetcher{
		client: &http.Client{},
	}
}

// FetchChain asks the specified peer for its full chain. The caller
// bounds the call through the context.
func (f *httpFetcher) FetchChain(ctx context.Context, pr peer.Peer) (ChainResponse, error) {
	url := fmt.Sprintf("%s/chain/list", fmt.Sprintf(baseURL, pr.Host))

	var resp ChainResponse
	if err := f.send(ctx, http.MethodGet, url, nil, &resp); err != nil {
		return ChainResponse{}, err
	}

	return resp, nil
}

// send is a helper function to make an HTTP request to a peer.
func (f *httpFetcher) send(ctx context.Context, method string, url string, dataSend any, dataRecv any) error {
	var body io.Reader
	if dataSend != nil {
		data, err := json.Marshal(dataSend)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if dataSend != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return fmt.Errorf("%s: %s", resp.Status, string(msg))
	}

	if dataRecv != nil {
		if err := json.NewDecoder(resp.Body).Decode(dataRecv); err != nil {
			return err
		}
	}

	return nil
}
