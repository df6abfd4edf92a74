package alerting_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/alerting"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

func runServer(t *testing.T) string {
	t.Helper()

	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	srv := natsserver.RunServer(&opts)
	t.Cleanup(srv.Shutdown)

	return srv.ClientURL()
}

func connect(t *testing.T, url string) *nats.Conn {
	t.Helper()

	conn, err := nats.Connect(url)
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	return conn
}

func TestBroker_Publish(t *testing.T) {
	t.Parallel()

	url := runServer(t)
	client := connect(t, url)

	subscription, err := client.SubscribeSync("qoe.alerts.>")
	require.NoError(t, err)
	require.NoError(t, client.Flush())

	broker, err := alerting.NewBroker(url)
	require.NoError(t, err)
	t.Cleanup(broker.Close)
	require.True(t, broker.IsActive())

	require.NoError(t, broker.Publish("qoe.alerts.critical", []byte(`{"id":"a1"}`)))

	msg, err := subscription.NextMsg(time.Second)
	require.NoError(t, err)
	require.Equal(t, "qoe.alerts.critical", msg.Subject)
	require.JSONEq(t, `{"id":"a1"}`, string(msg.Data))
}

func TestBroker_Serve(t *testing.T) {
	t.Parallel()

	type statusReply struct {
		entities.MQResponse
		Subject string `json:"subject"`
	}

	url := runServer(t)
	client := connect(t, url)

	broker, err := alerting.NewBroker(url)
	require.NoError(t, err)
	t.Cleanup(broker.Close)

	notified := make(chan string, 1)
	routes := map[string]alerting.Handler{
		"qoe.test.status": func(m *nats.Msg) any {
			return statusReply{MQResponse: entities.NewOkResponse(), Subject: m.Subject}
		},
		"qoe.test.broken": func(_ *nats.Msg) any {
			return make(chan int)
		},
		"qoe.test.notify": func(m *nats.Msg) any {
			notified <- string(m.Data)
			return entities.NewOkResponse()
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() {
		served <- broker.Serve(ctx, routes)
	}()

	var msg *nats.Msg
	require.Eventually(t, func() bool {
		msg, err = client.Request("qoe.test.status", nil, 200*time.Millisecond)
		return err == nil
	}, 3*time.Second, 50*time.Millisecond)

	var reply statusReply
	require.NoError(t, json.Unmarshal(msg.Data, &reply))
	require.Equal(t, http.StatusOK, reply.Code)
	require.Equal(t, "qoe.test.status", reply.Subject)

	// handler runs even when nobody waits for an answer
	require.NoError(t, client.Publish("qoe.test.notify", []byte("ping")))
	select {
	case data := <-notified:
		require.Equal(t, "ping", data)
	case <-time.After(time.Second):
		t.Fatal("notify handler was not called")
	}

	_, err = client.Request("qoe.test.broken", nil, 200*time.Millisecond)
	require.ErrorIs(t, err, nats.ErrTimeout)

	cancel()
	select {
	case err = <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("serve did not stop")
	}

	require.Eventually(t, func() bool {
		_, err := client.Request("qoe.test.status", nil, 100*time.Millisecond)
		return err != nil
	}, 3*time.Second, 50*time.Millisecond)
}

func TestNewBroker_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := alerting.NewBroker("nats://127.0.0.1:1")
	require.Error(t, err)
}
