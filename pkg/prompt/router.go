package prompt

import (
	"context"

	"oda-chatbot-be/internal/pkg/logger"
)

// Router evaluates a statically ordered handler chain and returns the result
// of the first handler that claims the prompt. The chain is built once at
// startup; the last handler must match unconditionally.
type Router struct {
	handlers []Handler
	log      logger.ILogger
}

func NewRouter(log logger.ILogger, handlers ...Handler) *Router {
	return &Router{
		handlers: handlers,
		log:      log,
	}
}

func (r *Router) Dispatch(ctx context.Context, req Request) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("prompt", "handler panicked", map[string]interface{}{
				"handler": result.Handler,
				"panic":   rec,
			})
			result = Result{
				Response: ErrorResponse("요청을 처리하는 중 오류가 발생했습니다."),
				Handler:  result.Handler,
			}
		}
	}()

	for _, h := range r.handlers {
		if h.CanHandle(req.Prompt, req.FocusedDataName) {
			result.Handler = h.Name()
			res := h.Handle(ctx, req)
			res.Handler = h.Name()
			result = res
			return result
		}
	}

	// Unreachable when the chain ends with a catch-all handler.
	return Result{Response: ErrorResponse("요청을 처리할 수 없습니다.")}
}
