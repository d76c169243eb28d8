package assistant

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"careassist/internal/rules"
	"careassist/internal/testutil"
)

func newTestAssistant(stub *testutil.StubResponder) *Assistant {
	return New(rules.Healthcare(), rules.General(), stub)
}

func response(t *testing.T, rs *rules.RuleSet, term string) string {
	t.Helper()
	resp, ok := rs.Response(term)
	if !ok {
		t.Fatalf("no rule for %q", term)
	}
	return resp
}

func TestRespond_RuleMatch(t *testing.T) {
	stub := &testutil.StubResponder{Reply: "generated"}
	a := newTestAssistant(stub)

	got := a.Respond(context.Background(), "I have a headache")
	want := []string{"Headaches can have various causes. If you experience frequent or severe headaches, consult a doctor."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Respond() = %q, want %q", got, want)
	}
	if calls := stub.Calls(); len(calls) != 0 {
		t.Errorf("fallback called %d times, want 0", len(calls))
	}
}

func TestRespond_Greeting(t *testing.T) {
	a := newTestAssistant(&testutil.StubResponder{Reply: "generated"})

	reply := a.Answer(context.Background(), "hi there")
	if reply.Source != SourceRules {
		t.Errorf("Source = %q, want %q", reply.Source, SourceRules)
	}
	want := []string{response(t, rules.General(), "hi")}
	if !reflect.DeepEqual(reply.Responses, want) {
		t.Errorf("Responses = %q, want %q", reply.Responses, want)
	}
	if !reflect.DeepEqual(reply.Terms, []string{"hi"}) {
		t.Errorf("Terms = %q, want [hi]", reply.Terms)
	}
}

func TestRespond_HealthcareBeforeGeneral(t *testing.T) {
	a := newTestAssistant(&testutil.StubResponder{Reply: "generated"})

	got := a.Respond(context.Background(), "Hello, I think I have a fever")
	want := []string{
		response(t, rules.Healthcare(), "fever"),
		response(t, rules.General(), "hello"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Respond() = %q, want %q", got, want)
	}
}

func TestRespond_Fallback(t *testing.T) {
	stub := &testutil.StubResponder{Reply: "  asdkjasd? I am not sure what that means.\n"}
	a := newTestAssistant(stub)

	reply := a.Answer(context.Background(), "asdkjasd")
	if reply.Source != SourceFallback {
		t.Errorf("Source = %q, want %q", reply.Source, SourceFallback)
	}
	if !reflect.DeepEqual(reply.Responses, []string{stub.Reply}) {
		t.Errorf("Responses = %q, want fallback reply unmodified", reply.Responses)
	}
	if calls := stub.Calls(); !reflect.DeepEqual(calls, []string{"asdkjasd"}) {
		t.Errorf("fallback inputs = %q, want [asdkjasd]", calls)
	}
}

func TestRespond_FallbackFailure(t *testing.T) {
	tests := []struct {
		name string
		stub *testutil.StubResponder
	}{
		{"error", &testutil.StubResponder{Err: errors.New("model unavailable")}},
		{"empty output", &testutil.StubResponder{Reply: ""}},
		{"whitespace output", &testutil.StubResponder{Reply: " \n\t"}},
		{"panic", &testutil.StubResponder{Panic: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAssistant(tt.stub)
			reply := a.Answer(context.Background(), "asdkjasd")
			if reply.Source != SourceApology {
				t.Errorf("Source = %q, want %q", reply.Source, SourceApology)
			}
			if !reflect.DeepEqual(reply.Responses, []string{ApologyMessage}) {
				t.Errorf("Responses = %q, want apology", reply.Responses)
			}
		})
	}
}

func TestRespond_NoResponder(t *testing.T) {
	a := New(rules.Healthcare(), rules.General(), nil)

	got := a.Respond(context.Background(), "asdkjasd")
	if !reflect.DeepEqual(got, []string{ApologyMessage}) {
		t.Errorf("Respond() = %q, want apology", got)
	}
	if a.Provider() != "none" {
		t.Errorf("Provider() = %q, want none", a.Provider())
	}
}

func TestRespond_Idempotent(t *testing.T) {
	a := newTestAssistant(&testutil.StubResponder{Reply: "same every time"})

	for _, input := range []string{"fever and a headache", "asdkjasd"} {
		first := a.Respond(context.Background(), input)
		second := a.Respond(context.Background(), input)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Respond(%q) not idempotent: %q vs %q", input, first, second)
		}
	}
}

func TestRespond_Concurrent(t *testing.T) {
	a := newTestAssistant(&testutil.StubResponder{Reply: "generated"})
	want := a.Respond(context.Background(), "stress and anxiety")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := a.Respond(context.Background(), "stress and anxiety")
			if !reflect.DeepEqual(got, want) {
				t.Errorf("concurrent Respond() = %q, want %q", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestSuggest(t *testing.T) {
	a := newTestAssistant(&testutil.StubResponder{})

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{"healthcare only", "sym", []string{"symptom"}},
		{"healthcare then general", "h", []string{"hypertension", "heart disease", "headache", "hi", "hello", "help", "how are you"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Suggest(tt.prefix)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest(%q) = %q, want %q", tt.prefix, got, tt.want)
			}
		})
	}

	healthcare, general := a.Terms()
	if got := a.Suggest(""); !reflect.DeepEqual(got, append(healthcare, general...)) {
		t.Errorf("Suggest(\"\") = %q, want every term", got)
	}
}
