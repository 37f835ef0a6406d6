package cluster

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
)

// SendTask manda una tarea de scoring a un nodo y espera sus parciales.
func SendTask(ctx context.Context, addr string, task *ScoreTask) (*ScoreResponse, error) {
	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	enc := json.NewEncoder(conn)
	if err := enc.Encode(Request{Type: RequestScore, Task: task}); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bufio.NewReader(conn))
	var resp ScoreResponse
	if err := dec.Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendPing hace el health-check de un nodo.
func SendPing(ctx context.Context, addr string) (*Pong, error) {
	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	enc := json.NewEncoder(conn)
	if err := enc.Encode(Request{Type: RequestPing}); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bufio.NewReader(conn))
	var pong Pong
	if err := dec.Decode(&pong); err != nil {
		return nil, err
	}
	return &pong, nil
}
