package cuti

import "context"

type CutiService interface {
	Create(ctx context.Context, req CreateCutiRequest) (CutiResponse, error)
	ListMine(ctx context.Context) ([]CutiResponse, error)
	List(ctx context.Context, filter CutiFilter) ([]CutiResponse, error)
	Approve(ctx context.Context, id int64) (CutiResponse, error)
	Reject(ctx context.Context, id int64, req RejectCutiRequest) (CutiResponse, error)
}
