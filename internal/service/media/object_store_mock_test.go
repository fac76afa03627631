package media

import (
	"context"
	"io"
	"sync"
)

var _ objectStore = &objectStoreMock{}

type objectStoreMock struct {
	// PutFunc mocks the Put method.
	PutFunc func(ctx context.Context, key string, contentType string, body io.Reader, size int64) error

	// PublicURLFunc mocks the PublicURL method.
	PublicURLFunc func(key string) string

	// calls tracks calls to the methods.
	calls struct {
		// Put holds details about calls to the Put method.
		Put []struct {
			Ctx         context.Context
			Key         string
			ContentType string
			Body        io.Reader
			Size        int64
		}
		// PublicURL holds details about calls to the PublicURL method.
		PublicURL []struct {
			Key string
		}
	}
	lockPut       sync.RWMutex
	lockPublicURL sync.RWMutex
}

// Put calls PutFunc.
func (mock *objectStoreMock) Put(ctx context.Context, key string, contentType string, body io.Reader, size int64) error {
	if mock.PutFunc == nil {
		panic("objectStoreMock.PutFunc: method is nil but objectStore.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		ContentType string
		Body        io.Reader
		Size        int64
	}{
		Ctx:         ctx,
		Key:         key,
		ContentType: contentType,
		Body:        body,
		Size:        size,
	}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, contentType, body, size)
}

// PutCalls gets all the calls that were made to Put.
func (mock *objectStoreMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	ContentType string
	Body        io.Reader
	Size        int64
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

// PublicURL calls PublicURLFunc.
func (mock *objectStoreMock) PublicURL(key string) string {
	if mock.PublicURLFunc == nil {
		panic("objectStoreMock.PublicURLFunc: method is nil but objectStore.PublicURL was just called")
	}
	callInfo := struct {
		Key string
	}{
		Key: key,
	}
	mock.lockPublicURL.Lock()
	mock.calls.PublicURL = append(mock.calls.PublicURL, callInfo)
	mock.lockPublicURL.Unlock()
	return mock.PublicURLFunc(key)
}

// PublicURLCalls gets all the calls that were made to PublicURL.
func (mock *objectStoreMock) PublicURLCalls() []struct {
	Key string
} {
	mock.lockPublicURL.RLock()
	calls := mock.calls.PublicURL
	mock.lockPublicURL.RUnlock()
	return calls
}
