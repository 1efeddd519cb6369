package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"짧은 메시지"}, SplitMessage("짧은 메시지", 10))

	text := "가격 비교\n상품A가 저렴함\n종합 추천"
	chunks := SplitMessage(text, 15)
	require.Len(t, chunks, 2)
	assert.Equal(t, "가격 비교\n상품A가 저렴함", chunks[0])
	assert.Equal(t, "종합 추천", chunks[1])

	long := strings.Repeat("가", 25)
	chunks = SplitMessage(long, 10)
	require.Len(t, chunks, 3)
	assert.Equal(t, strings.Repeat("가", 10), chunks[0])
	assert.Equal(t, strings.Repeat("가", 5), chunks[2])
}
