package server

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// FlashcardServiceName is the fully-qualified name of the flashcard service.
const FlashcardServiceName = "cardsmith.v1.FlashcardService"

const (
	FlashcardServiceListFlashcardsProcedure    = "/" + FlashcardServiceName + "/ListFlashcards"
	FlashcardServiceGenerateFromTopicProcedure = "/" + FlashcardServiceName + "/GenerateFromTopic"
	FlashcardServiceGenerateFromFileProcedure  = "/" + FlashcardServiceName + "/GenerateFromFile"
	FlashcardServiceImportFlashcardsProcedure  = "/" + FlashcardServiceName + "/ImportFlashcards"
	FlashcardServiceExportFlashcardsProcedure  = "/" + FlashcardServiceName + "/ExportFlashcards"
	FlashcardServiceBeginEditProcedure         = "/" + FlashcardServiceName + "/BeginEdit"
	FlashcardServiceCommitEditProcedure        = "/" + FlashcardServiceName + "/CommitEdit"
	FlashcardServiceCancelEditProcedure        = "/" + FlashcardServiceName + "/CancelEdit"
)

// FlashcardServiceHandler is implemented by FlashcardHandler.
type FlashcardServiceHandler interface {
	ListFlashcards(context.Context, *connect.Request[ListFlashcardsRequest]) (*connect.Response[ListFlashcardsResponse], error)
	GenerateFromTopic(context.Context, *connect.Request[GenerateFromTopicRequest]) (*connect.Response[GenerateResponse], error)
	GenerateFromFile(context.Context, *connect.Request[GenerateFromFileRequest]) (*connect.Response[GenerateResponse], error)
	ImportFlashcards(context.Context, *connect.Request[ImportFlashcardsRequest]) (*connect.Response[ImportFlashcardsResponse], error)
	ExportFlashcards(context.Context, *connect.Request[ExportFlashcardsRequest]) (*connect.Response[ExportFlashcardsResponse], error)
	BeginEdit(context.Context, *connect.Request[BeginEditRequest]) (*connect.Response[EditResponse], error)
	CommitEdit(context.Context, *connect.Request[CommitEditRequest]) (*connect.Response[EditResponse], error)
	CancelEdit(context.Context, *connect.Request[CancelEditRequest]) (*connect.Response[EditResponse], error)
}

// NewFlashcardServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler.
func NewFlashcardServiceHandler(svc FlashcardServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	handlers := map[string]http.Handler{
		FlashcardServiceListFlashcardsProcedure:    connect.NewUnaryHandler(FlashcardServiceListFlashcardsProcedure, svc.ListFlashcards, opts...),
		FlashcardServiceGenerateFromTopicProcedure: connect.NewUnaryHandler(FlashcardServiceGenerateFromTopicProcedure, svc.GenerateFromTopic, opts...),
		FlashcardServiceGenerateFromFileProcedure:  connect.NewUnaryHandler(FlashcardServiceGenerateFromFileProcedure, svc.GenerateFromFile, opts...),
		FlashcardServiceImportFlashcardsProcedure:  connect.NewUnaryHandler(FlashcardServiceImportFlashcardsProcedure, svc.ImportFlashcards, opts...),
		FlashcardServiceExportFlashcardsProcedure:  connect.NewUnaryHandler(FlashcardServiceExportFlashcardsProcedure, svc.ExportFlashcards, opts...),
		FlashcardServiceBeginEditProcedure:         connect.NewUnaryHandler(FlashcardServiceBeginEditProcedure, svc.BeginEdit, opts...),
		FlashcardServiceCommitEditProcedure:        connect.NewUnaryHandler(FlashcardServiceCommitEditProcedure, svc.CommitEdit, opts...),
		FlashcardServiceCancelEditProcedure:        connect.NewUnaryHandler(FlashcardServiceCancelEditProcedure, svc.CancelEdit, opts...),
	}

	return "/" + FlashcardServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := handlers[strings.TrimSuffix(r.URL.Path, "/")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		handler.ServeHTTP(w, r)
	})
}

// FlashcardServiceClient calls the flashcard service over HTTP.
type FlashcardServiceClient struct {
	ListFlashcards    *connect.Client[ListFlashcardsRequest, ListFlashcardsResponse]
	GenerateFromTopic *connect.Client[GenerateFromTopicRequest, GenerateResponse]
	GenerateFromFile  *connect.Client[GenerateFromFileRequest, GenerateResponse]
	ImportFlashcards  *connect.Client[ImportFlashcardsRequest, ImportFlashcardsResponse]
	ExportFlashcards  *connect.Client[ExportFlashcardsRequest, ExportFlashcardsResponse]
	BeginEdit         *connect.Client[BeginEditRequest, EditResponse]
	CommitEdit        *connect.Client[CommitEditRequest, EditResponse]
	CancelEdit        *connect.Client[CancelEditRequest, EditResponse]
}

func NewFlashcardServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *FlashcardServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &FlashcardServiceClient{
		ListFlashcards:    connect.NewClient[ListFlashcardsRequest, ListFlashcardsResponse](httpClient, baseURL+FlashcardServiceListFlashcardsProcedure, opts...),
		GenerateFromTopic: connect.NewClient[GenerateFromTopicRequest, GenerateResponse](httpClient, baseURL+FlashcardServiceGenerateFromTopicProcedure, opts...),
		GenerateFromFile:  connect.NewClient[GenerateFromFileRequest, GenerateResponse](httpClient, baseURL+FlashcardServiceGenerateFromFileProcedure, opts...),
		ImportFlashcards:  connect.NewClient[ImportFlashcardsRequest, ImportFlashcardsResponse](httpClient, baseURL+FlashcardServiceImportFlashcardsProcedure, opts...),
		ExportFlashcards:  connect.NewClient[ExportFlashcardsRequest, ExportFlashcardsResponse](httpClient, baseURL+FlashcardServiceExportFlashcardsProcedure, opts...),
		BeginEdit:         connect.NewClient[BeginEditRequest, EditResponse](httpClient, baseURL+FlashcardServiceBeginEditProcedure, opts...),
		CommitEdit:        connect.NewClient[CommitEditRequest, EditResponse](httpClient, baseURL+FlashcardServiceCommitEditProcedure, opts...),
		CancelEdit:        connect.NewClient[CancelEditRequest, EditResponse](httpClient, baseURL+FlashcardServiceCancelEditProcedure, opts...),
	}
}
