package assistant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractFood(t *testing.T) {
	t.Parallel()
	text := "A banana runs about 105 kcal.\n```json\n" +
		`{"food": {"name": "Banana", "calories": 105, "protein": 1, "carbs": 27, "fat": 0, "serving_size": 1, "serving_unit": "medium"}}` +
		"\n```\nWant me to log it?"

	food, rest, ok := extractFood(text)
	if !ok {
		t.Fatalf("expected a food block")
	}
	if food.Name != "Banana" || food.Calories != 105 {
		t.Fatalf("unexpected food: %+v", food)
	}
	if food.Source != "assistant" {
		t.Errorf("source = %q", food.Source)
	}
	if rest != "A banana runs about 105 kcal.\nWant me to log it?" {
		t.Errorf("cleaned text = %q", rest)
	}
}

func TestExtractFoodNoBlock(t *testing.T) {
	t.Parallel()
	text := "Protein needs depend on body weight."
	food, rest, ok := extractFood(text)
	if ok || food != nil {
		t.Fatalf("expected no food")
	}
	if rest != text {
		t.Errorf("text must pass through untouched")
	}
}

func TestExtractFoodRejectsEmptyName(t *testing.T) {
	t.Parallel()
	text := "```json\n{\"food\": {\"name\": \"  \", \"calories\": 10}}\n```"
	if _, _, ok := extractFood(text); ok {
		t.Fatalf("blank name must not produce a food")
	}
}

func TestExtractFoodBadJSON(t *testing.T) {
	t.Parallel()
	text := "```json\n{not json\n```"
	if _, _, ok := extractFood(text); ok {
		t.Fatalf("invalid json must not produce a food")
	}
}

func TestChatParsesResponse(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "sk-test" {
			t.Errorf("missing api key header")
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Errorf("missing version header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content": [{"type": "text", "text": "Eat more fiber."}]}`))
	}))
	defer ts.Close()

	c := New("sk-test", "", ts.URL)
	reply, err := c.Chat(context.Background(), nil, "any tips?")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply.Message != "Eat more fiber." {
		t.Errorf("message = %q", reply.Message)
	}
	if reply.Food != nil {
		t.Errorf("unexpected food: %+v", reply.Food)
	}
}

func TestChatErrorStatus(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid x-api-key"}}`))
	}))
	defer ts.Close()

	c := New("bad-key", "", ts.URL)
	if _, err := c.Chat(context.Background(), nil, "hi"); err == nil {
		t.Fatalf("expected error on 401")
	}
}
