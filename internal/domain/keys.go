package domain

type CtxKey string

const (
	KeyProfileID CtxKey = "ProfileID"
	KeyPhone     CtxKey = "Phone"
)
