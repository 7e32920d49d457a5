package controller_test

import (
	"fmt"
	"net/http"
	"testing"
)

func (s *testServer) submitResult(t *testing.T, questionID string, selected int) (int, map[string]interface{}) {
	t.Helper()
	body := fmt.Sprintf(`{
		"username": "alice",
		"result": [{"questionId": %q, "selectedAnswer": %d}]
	}`, questionID, selected)
	w, envelope := s.do(t, http.MethodPost, "/api/result", body)
	data, _ := envelope.Data.(map[string]interface{})
	return w.Code, data
}

func TestStoreResultEndpoint(t *testing.T) {
	s := newTestServer()
	id := s.createQuestion(t, validQuestionBody)

	code, data := s.submitResult(t, id, 1)
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	if data["percentageScore"].(float64) != 100 {
		t.Fatalf("expected 100%%, got %v", data["percentageScore"])
	}
	if data["achieved"].(string) != "passed" {
		t.Fatalf("expected passed, got %v", data["achieved"])
	}
	if data["userToken"].(string) == "" {
		t.Fatal("expected one-time user token in response")
	}
	if data["attemptsRemaining"].(float64) != 2 {
		t.Fatalf("expected 2 attempts remaining, got %v", data["attemptsRemaining"])
	}
}

func TestStoreResultWrongAnswer(t *testing.T) {
	s := newTestServer()
	id := s.createQuestion(t, validQuestionBody)

	code, data := s.submitResult(t, id, 0)
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	if data["percentageScore"].(float64) != 0 {
		t.Fatalf("expected 0%%, got %v", data["percentageScore"])
	}
	if data["achieved"].(string) != "failed" {
		t.Fatalf("expected failed, got %v", data["achieved"])
	}
}

func TestStoreResultThrottled(t *testing.T) {
	s := newTestServer()
	id := s.createQuestion(t, validQuestionBody)

	for i := 0; i < 3; i++ {
		if code, _ := s.submitResult(t, id, 1); code != http.StatusCreated {
			t.Fatalf("submit %d failed with %d", i+1, code)
		}
	}

	code, _ := s.submitResult(t, id, 1)
	if code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on fourth attempt, got %d", code)
	}
}

func TestStoreResultMismatch(t *testing.T) {
	s := newTestServer()

	code, _ := s.submitResult(t, "1f2e3d4c-0000-4000-8000-000000000000", 1)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 mismatch, got %d", code)
	}
}

func TestListAndDeleteResults(t *testing.T) {
	s := newTestServer()
	id := s.createQuestion(t, validQuestionBody)

	// 空库清空 → 404
	w, _ := s.do(t, http.MethodDelete, "/api/result/all", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on empty bulk delete, got %d", w.Code)
	}

	if code, _ := s.submitResult(t, id, 1); code != http.StatusCreated {
		t.Fatalf("submit failed with %d", code)
	}

	w, envelope := s.do(t, http.MethodGet, "/api/result", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	rows := envelope.Data.([]interface{})
	if len(rows) != 1 {
		t.Fatalf("expected 1 result, got %d", len(rows))
	}
	resultID := rows[0].(map[string]interface{})["id"].(string)

	// 存储中的 userId 是哈希，不等于返回过的原始令牌
	if rows[0].(map[string]interface{})["userId"].(string) == "" {
		t.Fatal("expected hashed user token persisted")
	}

	w, _ = s.do(t, http.MethodDelete, "/api/result/"+resultID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w, _ = s.do(t, http.MethodDelete, "/api/result/"+resultID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
