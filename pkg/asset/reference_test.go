package asset

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"
)

// fakeReader はパスごとに固定のバイト列を返す remoteio.InputReader の代役なのだ。
type fakeReader struct {
	files map[string][]byte
}

func (fr *fakeReader) Open(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := fr.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("PNGのエンコードに失敗したのだ: %v", err)
	}
	return buf.Bytes()
}

func TestReferenceLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("有効な画像だけが元の順序で返るのだ", func(t *testing.T) {
		reader := &fakeReader{files: map[string][]byte{
			"a.png": encodePNG(t, 2, 3),
			"b.png": []byte("this is not an image"),
			"c.png": encodePNG(t, 4, 5),
		}}

		refs := NewReferenceLoader(reader).Load(ctx, []string{"a.png", "b.png", "c.png"})

		if len(refs) != 2 {
			t.Fatalf("読み込めた枚数が違うのだ: %d", len(refs))
		}
		if refs[0].Path != "a.png" || refs[1].Path != "c.png" {
			t.Errorf("順序が保持されていないのだ: %+v", refs)
		}
		if refs[0].Width != 2 || refs[0].Height != 3 {
			t.Errorf("デコード結果の寸法が違うのだ: %dx%d", refs[0].Width, refs[0].Height)
		}
		if refs[0].MIMEType != "image/png" {
			t.Errorf("MIMEタイプが違うのだ: %s", refs[0].MIMEType)
		}
	})

	t.Run("全パスが無効でもクラッシュせず空スライスを返すのだ", func(t *testing.T) {
		reader := &fakeReader{files: map[string][]byte{}}

		refs := NewReferenceLoader(reader).Load(ctx, []string{"missing1.png", "missing2.png"})

		if len(refs) != 0 {
			t.Errorf("空であるべきなのだ: %+v", refs)
		}
	})

	t.Run("パス指定なしでも空スライスを返すのだ", func(t *testing.T) {
		refs := NewReferenceLoader(&fakeReader{}).Load(ctx, nil)
		if len(refs) != 0 {
			t.Errorf("空であるべきなのだ: %+v", refs)
		}
	})
}

func TestImageFileName(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{1, "test_ad_01.png"},
		{9, "test_ad_09.png"},
		{12, "test_ad_12.png"},
		{100, "test_ad_100.png"},
	}
	for _, tc := range cases {
		if got := ImageFileName("test_ad", tc.index); got != tc.want {
			t.Errorf("ゼロ埋めファイル名が違うのだ: got %s, want %s", got, tc.want)
		}
	}
}

func TestCreateIndexedRegex(t *testing.T) {
	re := CreateIndexedRegex("test_ad")

	for _, name := range []string{"test_ad_01.png", "test_ad_42.png", "test_ad_100.png"} {
		if !re.MatchString(name) {
			t.Errorf("%s がマッチしないのだ", name)
		}
	}
	for _, name := range []string{"test_ad_1.png", "other_01.png", "test_ad_01.jpg"} {
		if re.MatchString(name) {
			t.Errorf("%s がマッチしてしまうのだ", name)
		}
	}
}

func TestResolveImagePath_InvalidIndex(t *testing.T) {
	if _, err := ResolveImagePath("output", "test_ad", 0); err == nil {
		t.Error("番号0でエラーが返っていないのだ")
	}
}
