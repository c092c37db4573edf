package rpcclient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/R3E-Network/NeoRust-sub000/pkg/config/netmode"
	"github.com/R3E-Network/NeoRust-sub000/pkg/core/transaction"
	"github.com/R3E-Network/NeoRust-sub000/pkg/neorpc"
	"github.com/R3E-Network/NeoRust-sub000/pkg/rpcclient/actor"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var _ actor.RPCActor = (*Client)(nil)

type rpcRecorder struct {
	mu       sync.Mutex
	requests []map[string]json.RawMessage
}

func (r *rpcRecorder) last(t *testing.T) (string, []json.RawMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.requests)
	req := r.requests[len(r.requests)-1]
	var (
		method string
		params []json.RawMessage
	)
	require.NoError(t, json.Unmarshal(req["method"], &method))
	require.NoError(t, json.Unmarshal(req["params"], &params))
	return method, params
}

// testRPCServer returns a server answering every request with the given
// result (or error if it's a *neorpc.Error).
func testRPCServer(t *testing.T, resp any) (*httptest.Server, *rpcRecorder) {
	rec := new(rpcRecorder)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, http.MethodPost, req.Method)
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		var r map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(body, &r))
		rec.mu.Lock()
		rec.requests = append(rec.requests, r)
		rec.mu.Unlock()

		var out = map[string]any{"jsonrpc": "2.0", "id": r["id"]}
		if e, ok := resp.(*neorpc.Error); ok {
			out["error"] = e
		} else {
			out["result"] = resp
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(out))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestNew(t *testing.T) {
	_, err := New(context.Background(), "ftp://localhost:1234", Options{})
	require.Error(t, err)

	_, err = New(context.Background(), "http://[::1", Options{})
	require.Error(t, err)

	c, err := New(context.Background(), "http://localhost:1234", Options{})
	require.NoError(t, err)
	require.Equal(t, "http://localhost:1234", c.Endpoint())
	c.Close()
}

func TestGetBlockCount(t *testing.T) {
	srv, rec := testRPCServer(t, 12345)
	c, err := New(context.Background(), srv.URL, Options{})
	require.NoError(t, err)

	count, err := c.GetBlockCount()
	require.NoError(t, err)
	require.Equal(t, uint32(12345), count)

	method, params := rec.last(t)
	require.Equal(t, "getblockcount", method)
	require.Empty(t, params)
}

func TestGetVersion(t *testing.T) {
	const resp = `{"tcpport":10333,"nonce":1,"useragent":"/Neo:3.6.0/","rpc":{"maxiteratorresultitems":100,"sessionenabled":true},"protocol":{"addressversion":53,"network":860833102,"msperblock":15000,"maxtraceableblocks":2102400,"maxvaliduntilblockincrement":5760,"maxtransactionsperblock":512,"memorypoolmaxtransactions":50000,"validatorscount":7,"initialgasdistribution":5200000000000000,"hardforks":[],"standbycommittee":[],"seedlist":[]}}`
	srv, _ := testRPCServer(t, json.RawMessage(resp))
	c, err := New(context.Background(), srv.URL, Options{})
	require.NoError(t, err)

	v, err := c.GetVersion()
	require.NoError(t, err)
	require.Equal(t, netmode.MainNet, v.Protocol.Network)
	require.Equal(t, uint32(5760), v.Protocol.MaxValidUntilBlockIncrement)
	require.Equal(t, "/Neo:3.6.0/", v.UserAgent)
}

func TestInvokeScript(t *testing.T) {
	srv, rec := testRPCServer(t, json.RawMessage(`{"state":"HALT","gasconsumed":"984060","script":"AQID","stack":[{"type":"Integer","value":"1"}]}`))
	c, err := New(context.Background(), srv.URL, Options{})
	require.NoError(t, err)

	signers := []transaction.Signer{{Account: util.Uint160{1, 2, 3}, Scopes: transaction.CalledByEntry}}
	res, err := c.InvokeScript([]byte{1, 2, 3}, signers)
	require.NoError(t, err)
	require.True(t, res.IsHalt())
	require.Equal(t, int64(984060), res.GasConsumed)

	method, params := rec.last(t)
	require.Equal(t, "invokescript", method)
	require.Equal(t, 2, len(params))
	var script string
	require.NoError(t, json.Unmarshal(params[0], &script))
	require.Equal(t, base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), script)
	var ss []transaction.Signer
	require.NoError(t, json.Unmarshal(params[1], &ss))
	require.Equal(t, signers, ss)

	// No signers.
	_, err = c.InvokeScript([]byte{1}, nil)
	require.NoError(t, err)
	_, params = rec.last(t)
	require.Equal(t, 1, len(params))
}

func TestInvokeFunction(t *testing.T) {
	srv, rec := testRPCServer(t, json.RawMessage(`{"state":"HALT","gasconsumed":"1","script":"AQ==","stack":[]}`))
	c, err := New(context.Background(), srv.URL, Options{})
	require.NoError(t, err)

	h := util.Uint160{1, 2, 3}
	_, err = c.InvokeFunction(h, "balanceOf", []smartcontract.Parameter{{Type: smartcontract.Hash160Type, Value: h}}, nil)
	require.NoError(t, err)
	method, params := rec.last(t)
	require.Equal(t, "invokefunction", method)
	require.Equal(t, 3, len(params))
	require.Equal(t, `"`+h.StringLE()+`"`, string(params[0]))
	require.Equal(t, `"balanceOf"`, string(params[1]))

	_, err = c.InvokeFunction(h, "symbol", nil, nil)
	require.NoError(t, err)
	_, params = rec.last(t)
	require.Equal(t, "[]", string(params[2]))
}

func TestInvokeContractVerify(t *testing.T) {
	srv, rec := testRPCServer(t, json.RawMessage(`{"state":"HALT","gasconsumed":"1","script":"AQ==","stack":[{"type":"Boolean","value":true}]}`))
	c, err := New(context.Background(), srv.URL, Options{})
	require.NoError(t, err)

	h := util.Uint160{1, 2, 3}
	signers := []transaction.Signer{{Account: h, Scopes: transaction.None}}
	_, err = c.InvokeContractVerify(h, nil, signers, transaction.Witness{}, transaction.Witness{})
	require.Error(t, err)

	_, err = c.InvokeContractVerify(h, nil, signers, transaction.Witness{InvocationScript: []byte{1}})
	require.NoError(t, err)
	method, params := rec.last(t)
	require.Equal(t, "invokecontractverify", method)
	require.Equal(t, 3, len(params))
	var sw []neorpc.SignerWithWitness
	require.NoError(t, json.Unmarshal(params[2], &sw))
	require.Equal(t, 1, len(sw))
	require.Equal(t, h, sw[0].Account)
	require.Equal(t, []byte{1}, sw[0].InvocationScript)
}

func TestCalculateNetworkFee(t *testing.T) {
	srv, rec := testRPCServer(t, json.RawMessage(`{"networkfee":"1230610"}`))
	c, err := New(context.Background(), srv.URL, Options{})
	require.NoError(t, err)

	tx := transaction.New([]byte{1, 2, 3}, 0)
	tx.Signers = []transaction.Signer{{Account: util.Uint160{1}}}
	tx.Scripts = []transaction.Witness{{}}
	fee, err := c.CalculateNetworkFee(tx)
	require.NoError(t, err)
	require.Equal(t, int64(1230610), fee)

	method, params := rec.last(t)
	require.Equal(t, "calculatenetworkfee", method)
	require.Equal(t, `"`+base64.StdEncoding.EncodeToString(tx.Bytes())+`"`, string(params[0]))
}

func TestSendRawTransaction(t *testing.T) {
	tx := transaction.New([]byte{1, 2, 3}, 0)
	tx.Signers = []transaction.Signer{{Account: util.Uint160{1}}}
	tx.Scripts = []transaction.Witness{{}}

	srv, _ := testRPCServer(t, json.RawMessage(`{"hash":"`+tx.Hash().StringLE()+`"}`))
	c, err := New(context.Background(), srv.URL, Options{})
	require.NoError(t, err)
	h, err := c.SendRawTransaction(tx)
	require.NoError(t, err)
	require.Equal(t, tx.Hash(), h)

	srv, _ = testRPCServer(t, neorpc.WrapErrorWithData(neorpc.ErrAlreadyExists, "dup"))
	c, err = New(context.Background(), srv.URL, Options{})
	require.NoError(t, err)
	h, err = c.SendRawTransaction(tx)
	require.ErrorIs(t, err, neorpc.ErrAlreadyExists)
	require.Equal(t, tx.Hash(), h)
}

func TestBadResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	c, err := New(context.Background(), srv.URL, Options{})
	require.NoError(t, err)
	_, err = c.GetBlockCount()
	require.ErrorContains(t, err, "HTTP 502")

	srv2, _ := testRPCServer(t, "not a number")
	c, err = New(context.Background(), srv2.URL, Options{})
	require.NoError(t, err)
	_, err = c.GetBlockCount()
	require.Error(t, err)
}

func TestRequestIDs(t *testing.T) {
	srv, rec := testRPCServer(t, 1)
	c, err := New(context.Background(), srv.URL, Options{})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = c.GetBlockCount()
		require.NoError(t, err)
	}
	for i, r := range rec.requests {
		var id uint64
		require.NoError(t, json.Unmarshal(r["id"], &id))
		require.Equal(t, uint64(i+1), id)
	}
}

func TestRateLimitAndContext(t *testing.T) {
	srv, _ := testRPCServer(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	c, err := New(ctx, srv.URL, Options{RequestsPerSecond: 0.001})
	require.NoError(t, err)

	// The first request uses the burst.
	_, err = c.GetBlockCount()
	require.NoError(t, err)
	cancel()
	_, err = c.GetBlockCount()
	require.ErrorIs(t, err, context.Canceled)
}

func TestMetrics(t *testing.T) {
	srv, _ := testRPCServer(t, 1)
	reg := prometheus.NewRegistry()
	c, err := New(context.Background(), srv.URL, Options{Metrics: reg})
	require.NoError(t, err)
	_, err = c.GetBlockCount()
	require.NoError(t, err)
	_, err = c.GetBlockCount()
	require.NoError(t, err)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range mfs {
		if mf.GetName() != "neotx_rpc_client_calls_total" {
			continue
		}
		found = true
		require.Equal(t, 1, len(mf.GetMetric()))
		require.Equal(t, float64(2), mf.GetMetric()[0].GetCounter().GetValue())
	}
	require.True(t, found)

	// Same registry can't be used twice.
	_, err = New(context.Background(), srv.URL, Options{Metrics: reg})
	require.Error(t, err)
}
