package services

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource 按脚本返回帧，nil表示一次失败的读取
type fakeSource struct {
	openErr error
	frames  []image.Image
	reads   int
	closed  bool
}

func (f *fakeSource) Open() error {
	return f.openErr
}

func (f *fakeSource) Read() (image.Image, bool) {
	if f.reads >= len(f.frames) {
		f.reads++
		return nil, false
	}
	frame := f.frames[f.reads]
	f.reads++
	return frame, frame != nil
}

func (f *fakeSource) Close() {
	f.closed = true
}

type fakeClassifier struct {
	label string
	err   error
	path  string
}

func (f *fakeClassifier) Analyze(_ context.Context, imgPath string) (string, error) {
	f.path = imgPath
	return f.label, f.err
}

func grayFrame(v uint8) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestCaptureFrameAllReadsFail(t *testing.T) {
	source := &fakeSource{frames: make([]image.Image, 0)}
	svc := NewCaptureService(source, &fakeClassifier{}, 0, 15)

	_, err := svc.CaptureFrame()
	assert.ErrorIs(t, err, ErrNoCamera)
	// 重试上限之内全部读完，设备已释放
	assert.Equal(t, 15, source.reads)
	assert.True(t, source.closed)
}

func TestCaptureFrameDeviceUnavailable(t *testing.T) {
	source := &fakeSource{openErr: errors.New("device busy")}
	svc := NewCaptureService(source, &fakeClassifier{}, 0, 15)

	_, err := svc.CaptureFrame()
	assert.ErrorIs(t, err, ErrNoCamera)
}

func TestCaptureFrameRetriesUntilSuccess(t *testing.T) {
	// 前两次读取失败，第三次成功
	source := &fakeSource{frames: []image.Image{nil, nil, grayFrame(100)}}
	svc := NewCaptureService(source, &fakeClassifier{}, 0, 15)

	frame, err := svc.CaptureFrame()
	require.NoError(t, err)
	assert.NotNil(t, frame)
	assert.Equal(t, 3, source.reads)
	assert.True(t, source.closed)
}

func TestAdjustBrightness(t *testing.T) {
	out := AdjustBrightness(grayFrame(100), 1.2, 30)
	r, g, b, _ := out.At(0, 0).RGBA()
	// 1.2*100+30 = 150
	assert.EqualValues(t, 150, r>>8)
	assert.EqualValues(t, 150, g>>8)
	assert.EqualValues(t, 150, b>>8)
}

func TestAdjustBrightnessClamps(t *testing.T) {
	out := AdjustBrightness(grayFrame(220), 1.2, 30)
	r, _, _, _ := out.At(0, 0).RGBA()
	// 1.2*220+30 = 294，截断到255
	assert.EqualValues(t, 255, r>>8)
}

func TestCaptureAndClassify(t *testing.T) {
	classifier := &fakeClassifier{label: "happy"}
	source := &fakeSource{frames: []image.Image{grayFrame(100)}}
	svc := NewCaptureService(source, classifier, 0, 15)

	label, err := svc.CaptureAndClassify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "happy", label)
	// 分类器按增强后的落盘文件取图
	assert.NotEmpty(t, classifier.path)
}

func TestCaptureAndClassifyNoFace(t *testing.T) {
	classifier := &fakeClassifier{err: ErrNoFaceDetected}
	source := &fakeSource{frames: []image.Image{grayFrame(100)}}
	svc := NewCaptureService(source, classifier, 0, 15)

	_, err := svc.CaptureAndClassify(context.Background())
	assert.ErrorIs(t, err, ErrNoFaceDetected)
}
