package httpkit

import (
	"net/http"
)

// Get registers a no-body handler
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post registers a no-body handler under POST
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}

// Delete registers a no-body handler under DELETE
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, Call(h))
}

// PostJSON mounts a strictly bound JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// PutJSON mounts a strictly bound JSON handler under PUT
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Put(path, JSON(h))
}

// PostLenient mounts a JSON handler that tolerates unknown fields and an empty body
func PostLenient[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h, Lenient))
}

// PutLenient is PostLenient under PUT
func PutLenient[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Put(path, JSON(h, Lenient))
}
