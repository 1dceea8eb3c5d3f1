package grpclib

import (
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"testing"
)

func TestRecoveryHandlerFunc(t *testing.T) {
	err := RecoveryHandlerFunc("some panic")
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "panic: some panic", status.Convert(err).Message())
}

func TestJSONCodec(t *testing.T) {
	type request struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	c := JSONCodec{}
	data, err := c.Marshal(request{ID: 11, Name: "name01"})
	assert.Equal(t, nil, err)
	assert.Equal(t, `{"id":11,"name":"name01"}`, string(data))

	var result request
	err = c.Unmarshal(data, &result)
	assert.Equal(t, nil, err)
	assert.Equal(t, request{ID: 11, Name: "name01"}, result)
	assert.Equal(t, "json", c.Name())
}
