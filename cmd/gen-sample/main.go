package main

import (
	"encoding/csv"
	"flag"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/cognicore/feedlens/pkg/feedlens/export"
)

// sampleFeedback cycles through ten representative Korean feedback texts.
var sampleFeedback = []string{
	"서비스가 정말 좋습니다. 직원분들이 친절하시고 빠르게 해결해주셨어요.",
	"배송이 너무 느려서 불만입니다. 다음에는 더 빨리 배송해주세요.",
	"제품 품질은 만족스럽지만 가격이 조금 비싸네요.",
	"고객센터 응답이 빠르고 친절해서 감사합니다.",
	"웹사이트가 복잡해서 주문하기 어려웠습니다.",
	"제품이 예상보다 훨씬 좋아서 만족합니다.",
	"배송 과정에서 제품이 손상되었습니다.",
	"할인 혜택이 많아서 좋았습니다.",
	"로그인이 자꾸 안되어서 불편했습니다.",
	"상품 설명이 자세해서 구매 결정에 도움이 되었습니다.",
}

var sampleCategories = []string{"배송", "품질", "서비스", "가격", "기타"}

func main() {
	var (
		out  = flag.String("out", "testdata/feedback.csv", "Output CSV path")
		rows = flag.Int("rows", 100, "Number of sample rows")
		seed = flag.Int64("seed", 1, "Random seed for ratings and categories")
	)
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	if _, err := f.Write(export.BOM); err != nil {
		log.Fatalf("write BOM: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	w := csv.NewWriter(f)

	if err := w.Write([]string{"date", "feedback", "rating", "category"}); err != nil {
		log.Fatalf("write header: %v", err)
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < *rows; i++ {
		row := []string{
			start.AddDate(0, 0, i).Format("2006-01-02"),
			sampleFeedback[i%len(sampleFeedback)],
			strconv.Itoa(rng.Intn(5) + 1),
			sampleCategories[rng.Intn(len(sampleCategories))],
		}
		if err := w.Write(row); err != nil {
			log.Fatalf("write row %d: %v", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("flush: %v", err)
	}
	log.Printf("wrote %d rows to %s", *rows, *out)
}
