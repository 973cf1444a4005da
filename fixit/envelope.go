package fixit

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Shape declares which response envelope an endpoint returns. The backend's
// endpoints evolved independently and never converged on one envelope, so
// every list endpoint declares its shape once, next to its path, and a single
// decoder reconciles them all into Page[T].
type Shape int

const (
	// ShapeAuto sniffs the body: bare arrays are wrapped, known envelopes
	// are mapped through, anything else is an error.
	ShapeAuto Shape = iota
	// ShapeBareArray is a bare JSON array with no pagination metadata.
	ShapeBareArray
	// ShapeDataPagination is {data: [...], pagination: {total, page, limit}}.
	ShapeDataPagination
	// ShapeTaskList is {tasks: [...], total, currentPage, itemsPerPage}.
	ShapeTaskList
	// ShapeSuccessData is {success, data: [...], meta: {total, page, pageSize}}.
	ShapeSuccessData
	// ShapeItemsTotal is {items: [...], total}.
	ShapeItemsTotal
)

// Page is the canonical list result every list operation resolves to,
// regardless of which envelope the backend used for that endpoint.
type Page[T any] struct {
	Items   []T `json:"items"`
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
}

// decodePage reconciles a raw list response body into a Page.
// A bare array of N elements becomes {Items: N elements in order,
// Total: N, Page: 1, PerPage: N}.
func decodePage[T any](body []byte, shape Shape) (*Page[T], error) {
	if shape == ShapeAuto {
		shape = sniffShape(body)
	}

	switch shape {
	case ShapeBareArray:
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return &Page[T]{Items: items, Total: len(items), Page: 1, PerPage: len(items)}, nil

	case ShapeDataPagination:
		var env struct {
			Data       []T `json:"data"`
			Pagination struct {
				Total int `json:"total"`
				Page  int `json:"page"`
				Limit int `json:"limit"`
			} `json:"pagination"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return &Page[T]{
			Items:   env.Data,
			Total:   env.Pagination.Total,
			Page:    env.Pagination.Page,
			PerPage: env.Pagination.Limit,
		}, nil

	case ShapeTaskList:
		var env struct {
			Tasks        []T `json:"tasks"`
			Total        int `json:"total"`
			CurrentPage  int `json:"currentPage"`
			ItemsPerPage int `json:"itemsPerPage"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return &Page[T]{
			Items:   env.Tasks,
			Total:   env.Total,
			Page:    env.CurrentPage,
			PerPage: env.ItemsPerPage,
		}, nil

	case ShapeSuccessData:
		var env struct {
			Success bool `json:"success"`
			Data    []T  `json:"data"`
			Meta    struct {
				Total    int `json:"total"`
				Page     int `json:"page"`
				PageSize int `json:"pageSize"`
			} `json:"meta"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		page := &Page[T]{
			Items:   env.Data,
			Total:   env.Meta.Total,
			Page:    env.Meta.Page,
			PerPage: env.Meta.PageSize,
		}
		// Older endpoints of this generation omit meta entirely.
		if page.Total == 0 && len(page.Items) > 0 {
			page.Total = len(page.Items)
			page.Page = 1
			page.PerPage = len(page.Items)
		}
		return page, nil

	case ShapeItemsTotal:
		var env struct {
			Items []T `json:"items"`
			Total int `json:"total"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return &Page[T]{Items: env.Items, Total: env.Total, Page: 1, PerPage: len(env.Items)}, nil

	default:
		return nil, fmt.Errorf("decode list: unknown envelope shape %d", shape)
	}
}

// sniffShape guesses the envelope from the body's leading token and keys.
func sniffShape(body []byte) Shape {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return ShapeBareArray
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return ShapeBareArray
	}
	switch {
	case probe["pagination"] != nil:
		return ShapeDataPagination
	case probe["tasks"] != nil:
		return ShapeTaskList
	case probe["success"] != nil:
		return ShapeSuccessData
	default:
		return ShapeItemsTotal
	}
}

// apiMessage extracts the backend's human-readable message from an error
// body. Endpoints report either {"message": ...} or {"error": ...}.
func apiMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	return env.Error
}

// unwrapEntity strips a {success, data: {...}} or {data: {...}} envelope from
// a single-entity response, returning the bare entity bytes. Bodies without a
// recognizable wrapper are returned unchanged.
func unwrapEntity(body []byte) []byte {
	var probe struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return body
	}
	trimmed := bytes.TrimLeft(probe.Data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return probe.Data
	}
	return body
}
