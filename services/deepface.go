package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DeepFaceClient 表情分类sidecar的HTTP客户端
// 服务按文件路径取图，开启强制人脸检测，单次请求不重试
type DeepFaceClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewDeepFaceClient(endpoint string) *DeepFaceClient {
	return &DeepFaceClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type analyzeRequest struct {
	ImgPath          string   `json:"img_path"`
	Actions          []string `json:"actions"`
	EnforceDetection bool     `json:"enforce_detection"`
}

type analyzeRecord struct {
	DominantEmotion string `json:"dominant_emotion"`
}

// Analyze 请求一次表情识别并返回主导情绪标签
// 检测不到人脸返回 ErrNoFaceDetected，结果缺少主导标签返回 ErrNoEmotion
func (c *DeepFaceClient) Analyze(ctx context.Context, imgPath string) (string, error) {
	payload, err := json.Marshal(analyzeRequest{
		ImgPath:          imgPath,
		Actions:          []string{"emotion"},
		EnforceDetection: true,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("请求表情分类服务失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// 开启强制检测后，检测不到人脸时服务端直接报错
	if resp.StatusCode != http.StatusOK {
		return "", ErrNoFaceDetected
	}

	record, err := normalizeAnalyzeResponse(body)
	if err != nil {
		return "", err
	}
	if record.DominantEmotion == "" {
		return "", ErrNoEmotion
	}
	return record.DominantEmotion, nil
}

// normalizeAnalyzeResponse 把分类器的三种返回形态统一成单条记录：
// {"results":[...]}、裸列表、单个对象
func normalizeAnalyzeResponse(body []byte) (*analyzeRecord, error) {
	var wrapped struct {
		Results []analyzeRecord `json:"results"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && len(wrapped.Results) > 0 {
		return &wrapped.Results[0], nil
	}

	var list []analyzeRecord
	if err := json.Unmarshal(body, &list); err == nil {
		if len(list) == 0 {
			return nil, ErrNoEmotion
		}
		return &list[0], nil
	}

	var single analyzeRecord
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, fmt.Errorf("无法解析分类结果: %w", err)
	}
	return &single, nil
}
