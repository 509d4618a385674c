package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"ctrader-openapi/messages"
)

func TestChainOrder(t *testing.T) {
	var trace []string
	tag := func(name string) Middleware {
		return func(next HandlerFunc) HandlerFunc {
			return func(ctx context.Context, req messages.Message) (*messages.ProtoMessage, error) {
				trace = append(trace, name+".before")
				res, err := next(ctx, req)
				trace = append(trace, name+".after")
				return res, err
			}
		}
	}

	handler := Chain(tag("A"), tag("B"), tag("C"))(func(ctx context.Context, req messages.Message) (*messages.ProtoMessage, error) {
		trace = append(trace, "handler")
		return &messages.ProtoMessage{}, nil
	})

	if _, err := handler(context.Background(), &messages.ProtoOAVersionReq{}); err != nil {
		t.Fatal(err)
	}

	want := []string{"A.before", "B.before", "C.before", "handler", "C.after", "B.after", "A.after"}
	if len(trace) != len(want) {
		t.Fatalf("trace %v", trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace %v, want %v", trace, want)
		}
	}
}

func TestTimeoutPropagatesDeadline(t *testing.T) {
	handler := Timeout(50 * time.Millisecond)(func(ctx context.Context, req messages.Message) (*messages.ProtoMessage, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	start := time.Now()
	_, err := handler(context.Background(), &messages.ProtoOAVersionReq{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("deadline took %v", elapsed)
	}
}

func TestRetryRecoversTransientFailure(t *testing.T) {
	transient := errors.New("transient")
	calls := 0
	handler := Retry(3, time.Millisecond, func(err error) bool { return errors.Is(err, transient) })(
		func(ctx context.Context, req messages.Message) (*messages.ProtoMessage, error) {
			calls++
			if calls < 3 {
				return nil, transient
			}
			return &messages.ProtoMessage{}, nil
		})

	res, err := handler(context.Background(), &messages.ProtoOAVersionReq{})
	if err != nil || res == nil {
		t.Fatalf("expected recovery, got res=%v err=%v", res, err)
	}
	if calls != 3 {
		t.Errorf("handler called %d times, want 3", calls)
	}
}

func TestRetrySkipsNonRetryableErrors(t *testing.T) {
	fatal := errors.New("fatal")
	calls := 0
	handler := Retry(3, time.Millisecond, func(err error) bool { return false })(
		func(ctx context.Context, req messages.Message) (*messages.ProtoMessage, error) {
			calls++
			return nil, fatal
		})

	if _, err := handler(context.Background(), &messages.ProtoOAVersionReq{}); !errors.Is(err, fatal) {
		t.Fatalf("expected fatal error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestLoggingPassesThrough(t *testing.T) {
	handler := Logging(zap.NewNop())(func(ctx context.Context, req messages.Message) (*messages.ProtoMessage, error) {
		return &messages.ProtoMessage{PayloadTypeTag: messages.PayloadTypeOAVersionRes}, nil
	})

	res, err := handler(context.Background(), &messages.ProtoOAVersionReq{})
	if err != nil {
		t.Fatal(err)
	}
	if res.PayloadTypeTag != messages.PayloadTypeOAVersionRes {
		t.Errorf("response mangled: %+v", res)
	}
}
