package services

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// WebcamSource 基于OpenCV的本地摄像头帧来源
// 设备在一次捕获期间独占，Open/Close 必须成对调用
type WebcamSource struct {
	device int
	cap    *gocv.VideoCapture
}

func NewWebcamSource(device int) *WebcamSource {
	return &WebcamSource{device: device}
}

func (w *WebcamSource) Open() error {
	cap, err := gocv.OpenVideoCapture(w.device)
	if err != nil {
		return fmt.Errorf("打开摄像头失败: %w", err)
	}
	if !cap.IsOpened() {
		cap.Close()
		return fmt.Errorf("摄像头设备 %d 不可用", w.device)
	}
	w.cap = cap
	return nil
}

func (w *WebcamSource) Read() (image.Image, bool) {
	if w.cap == nil {
		return nil, false
	}

	mat := gocv.NewMat()
	defer mat.Close()

	if ok := w.cap.Read(&mat); !ok || mat.Empty() {
		return nil, false
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, false
	}
	return img, true
}

func (w *WebcamSource) Close() {
	if w.cap != nil {
		w.cap.Close()
		w.cap = nil
	}
}
