package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
)

// TestInitTracer 测试Tracer初始化
// exporter是惰性连接的，初始化本身不需要Collector在线
func TestInitTracer(t *testing.T) {
	shutdown, err := InitTracer("bookshop-test", "localhost:4317")
	if err != nil {
		t.Fatalf("初始化Tracer失败: %v", err)
	}
	defer shutdown(context.Background())

	if tracer := otel.Tracer("test"); tracer == nil {
		t.Error("全局TracerProvider未设置")
	}
}

// TestStartSpan 测试Span创建与TraceID传递
func TestStartSpan(t *testing.T) {
	shutdown, err := InitTracer("bookshop-test", "localhost:4317")
	if err != nil {
		t.Fatalf("初始化Tracer失败: %v", err)
	}
	defer shutdown(context.Background())

	ctx, span := StartSpan(context.Background(), "bookshop-test", "CreateOrder")
	defer span.End()

	if !span.SpanContext().IsValid() {
		t.Fatal("Span无效")
	}

	traceID := ExtractTraceID(ctx)
	if traceID == "" || traceID == "00000000000000000000000000000000" {
		t.Errorf("TraceID无效: %s", traceID)
	}

	// 子Span应继承TraceID
	childCtx, childSpan := StartSpan(ctx, "bookshop-test", "SnapshotPrices")
	defer childSpan.End()

	if ExtractTraceID(childCtx) != traceID {
		t.Errorf("子Span的TraceID不一致: parent=%s child=%s", traceID, ExtractTraceID(childCtx))
	}
	if ExtractSpanID(childCtx) == ExtractSpanID(ctx) {
		t.Error("子Span应有独立的SpanID")
	}
}

// TestExtractTraceID_NoSpan 没有Span时应返回空串
func TestExtractTraceID_NoSpan(t *testing.T) {
	if id := ExtractTraceID(context.Background()); id != "" {
		t.Errorf("期望空TraceID，实际: %s", id)
	}
}
