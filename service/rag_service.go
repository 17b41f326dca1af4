package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/qanooni/hr-assistant-be/store"
	"github.com/qanooni/hr-assistant-be/types"
)

const (
	// ChatTopK is how many chunks ground a single answer.
	ChatTopK = 6

	// SourcePreviewLimit bounds the cited content echoed to the caller.
	SourcePreviewLimit = 400
)

const systemPrompt = `أنت مساعد قانوني سعودي يعتمد على السياق المرفق فقط. أجب بالعربية بدقة.
- أجب بسرعة ودقة
- لا تختلق معلومات. إن لم تجد جوابًا واضحًا من السياق فقل ذلك.
- أجب إجابة كاملة عن السؤال وعن ما يترتب عليه من أحكام قانونية مثل (اذا استقلت وعقدك محدد المدة ستدفع ما تبقى من العقد)
- اختم بـ "المصادر:" مع [#] واسم الملف.`

// Fixed terminal responses. Returned without a provider call.
const (
	msgLawsNotLoaded     = "لم تُحمّل قوانين بعد. يرجى رفعها من لوحة الإدارة."
	msgContractNotLoaded = "لم يتم رفع عقد للتحليل بعد. ارفع العقد أولاً."
	msgNoRelevantInfo    = "لم أجد معلومات ذات صلة في الوثائق المحملة. حاول صياغة السؤال بطريقة مختلفة."
)

// RAGService orchestrates a chat turn: select the corpus by mode, retrieve
// the most similar chunks, build a grounded prompt and shape the model answer
// with cited sources.
type RAGService struct {
	corpus *store.CorpusStore
	search *SearchService
	ai     AIService
}

func NewRAGService(corpus *store.CorpusStore, search *SearchService, ai AIService) *RAGService {
	return &RAGService{
		corpus: corpus,
		search: search,
		ai:     ai,
	}
}

// Chat answers a single user message in the given mode. The client-supplied
// history is accepted on the wire but retrieval uses only the latest message.
func (s *RAGService) Chat(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	mode := req.Mode
	if mode == "" {
		mode = types.DocumentTypeLaw
	}

	chunks, err := s.corpus.All(mode)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return &types.ChatResponse{
			Response: notLoadedMessage(mode),
			Sources:  []types.Source{},
		}, nil
	}

	results, err := s.search.Search(ctx, req.Message, chunks, ChatTopK)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &types.ChatResponse{
			Response: msgNoRelevantInfo,
			Sources:  []types.Source{},
		}, nil
	}

	answer, err := s.ai.Complete(ctx, buildPrompt(req.Message, results))
	if err != nil {
		return nil, err
	}

	return &types.ChatResponse{
		Response: answer,
		Sources:  buildSources(results),
	}, nil
}

func notLoadedMessage(mode string) string {
	if mode == types.DocumentTypeContract {
		return msgContractNotLoaded
	}
	return msgLawsNotLoaded
}

func buildPrompt(message string, results []types.ScoredChunk) string {
	var context strings.Builder
	for i, r := range results {
		if i > 0 {
			context.WriteString("\n\n")
		}
		fmt.Fprintf(&context, "[#%d] (%s | %s)\n%s", i+1, r.Chunk.Metadata.Type, r.Chunk.Metadata.FileName, r.Chunk.Content)
	}
	return fmt.Sprintf("%s\n\nسؤال:\n%s\n\nالسياق:\n%s", systemPrompt, message, context.String())
}

func buildSources(results []types.ScoredChunk) []types.Source {
	sources := make([]types.Source, 0, len(results))
	for i, r := range results {
		sources = append(sources, types.Source{
			Type:     r.Chunk.Metadata.Type,
			FileName: r.Chunk.Metadata.FileName,
			Content:  previewContent(r.Chunk.Content),
			Ref:      fmt.Sprintf("#%d", i+1),
		})
	}
	return sources
}

func previewContent(content string) string {
	runes := []rune(content)
	if len(runes) <= SourcePreviewLimit {
		return content
	}
	return string(runes[:SourcePreviewLimit]) + "..."
}
