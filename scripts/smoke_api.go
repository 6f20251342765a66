package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:8080/api"

// Pretty print JSON helper
func prettyPrint(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

// Walks one full conversation through the running server: search, detail,
// utilization, link, then the session endpoints. Needs a valid JWT in
// SMOKE_TOKEN.
func main() {
	token := os.Getenv("SMOKE_TOKEN")
	if token == "" {
		color.Red("SMOKE_TOKEN is not set")
		os.Exit(1)
	}

	color.Cyan("🚀 Starting Prompt API Smoke Test\n")

	var sessionId string
	prompts := []struct {
		label  string
		prompt string
	}{
		{"1. Help", "/도움말"},
		{"2. General Search", "서울 교통 데이터 5개"},
		{"3. Detail (focused dataset)", "상세 정보"},
		{"4. Full Utilization", "전체 활용"},
		{"5. Open API Link", "/오픈api"},
		{"6. New Search Reset", "/다시"},
	}

	for _, step := range prompts {
		color.Yellow("\n[USER] %s", step.label)
		body := map[string]interface{}{"prompt": step.prompt}
		if sessionId != "" {
			body["session_id"] = sessionId
		}
		resp, respBody, err := sendRequest("POST", "/prompt/v1", token, body)
		if err != nil {
			color.Red("Failed: %v", err)
			continue
		}
		color.Green("Status: %s", resp.Status)
		prettyPrint(respBody)

		var envelope struct {
			Data struct {
				SessionId string `json:"session_id"`
			} `json:"data"`
		}
		if err := json.Unmarshal(respBody, &envelope); err == nil && envelope.Data.SessionId != "" {
			sessionId = envelope.Data.SessionId
		}
	}

	color.Yellow("\n[USER] 7. Query Plan Debug")
	resp, respBody, err := sendRequest("GET", "/prompt/v1/query-plan?q=부산 관광 데이터 3개", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		prettyPrint(respBody)
	}

	color.Yellow("\n[USER] 8. Sessions")
	resp, respBody, err = sendRequest("GET", "/chat/v1/sessions", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		prettyPrint(respBody)
	}

	color.Yellow("\n[USER] 9. History")
	resp, respBody, err = sendRequest("GET", "/chat/v1/history", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		prettyPrint(respBody)
	}

	if sessionId != "" {
		color.Yellow("\n[USER] 10. Delete Session")
		resp, respBody, err = sendRequest("DELETE", "/chat/v1/sessions/"+sessionId, token, nil)
		if err != nil {
			color.Red("Failed: %v", err)
		} else {
			color.Green("Status: %s", resp.Status)
			prettyPrint(respBody)
		}
	}

	color.Cyan("\n✅ Smoke test finished")
}
