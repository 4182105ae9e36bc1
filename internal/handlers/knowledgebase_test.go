package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"notebase/internal/storage"
	"notebase/internal/storage/mocks"
	"notebase/internal/validator"
)

func TestKnowledgeBaseHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(*mocks.MockStore)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"name":"Math"}`,
			mockSetup: func(m *mocks.MockStore) {
				m.EXPECT().
					AddKnowledgeBase(gomock.Any(), &storage.KnowledgeBase{Name: "Math"}).
					DoAndReturn(func(_ context.Context, kb *storage.KnowledgeBase) (bool, error) {
						kb.ID = 7
						return true, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate",
			body: `{"name":"Math"}`,
			mockSetup: func(m *mocks.MockStore) {
				m.EXPECT().AddKnowledgeBase(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "storage failure",
			body: `{"name":"Math"}`,
			mockSetup: func(m *mocks.MockStore) {
				m.EXPECT().AddKnowledgeBase(gomock.Any(), gomock.Any()).Return(false, storage.ErrStorage)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "invalid JSON body",
			body:       "invalid json",
			mockSetup:  func(m *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"name":"Math","color":"red"}`,
			mockSetup:  func(m *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "slash in name",
			body:       `{"name":"a/b"}`,
			mockSetup:  func(m *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockStore(ctrl)
			tt.mockSetup(mockStore)
			handler := NewKnowledgeBaseHandler(mockStore, validator.New())

			w := httptest.NewRecorder()
			handler.Create(w, newRequest(http.MethodPost, "/api/knowledge-bases", tt.body, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("Create() status = %v, want %v (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusCreated {
				var resp KnowledgeBaseResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.ID != 7 || resp.Name != "Math" {
					t.Errorf("Create() response = %+v", resp)
				}
			}
		})
	}
}

func TestKnowledgeBaseHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		param      string
		mockSetup  func(*mocks.MockStore)
		wantStatus int
	}{
		{
			name:  "found",
			param: "Math",
			mockSetup: func(m *mocks.MockStore) {
				m.EXPECT().FetchKnowledgeBase(gomock.Any(), "Math").
					Return(storage.Lookup[storage.KnowledgeBase]{Value: storage.KnowledgeBase{ID: 1, Name: "Math"}, Status: storage.Found}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "decoded name is used as-is",
			param: "Linear Algebra ",
			mockSetup: func(m *mocks.MockStore) {
				m.EXPECT().FetchKnowledgeBase(gomock.Any(), "Linear Algebra ").
					Return(storage.Lookup[storage.KnowledgeBase]{Value: storage.KnowledgeBase{ID: 2, Name: "Linear Algebra "}, Status: storage.Found}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "percent sign is not decoded twice",
			param: "100%",
			mockSetup: func(m *mocks.MockStore) {
				m.EXPECT().FetchKnowledgeBase(gomock.Any(), "100%").
					Return(storage.Lookup[storage.KnowledgeBase]{Value: storage.KnowledgeBase{ID: 3, Name: "100%"}, Status: storage.Found}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "raw path parameter is decoded once",
			target: "/api/knowledge-bases/Linear%2CAlgebra",
			param:  "Linear%2CAlgebra",
			mockSetup: func(m *mocks.MockStore) {
				m.EXPECT().FetchKnowledgeBase(gomock.Any(), "Linear,Algebra").
					Return(storage.Lookup[storage.KnowledgeBase]{Value: storage.KnowledgeBase{ID: 4, Name: "Linear,Algebra"}, Status: storage.Found}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "not found",
			param: "Physics",
			mockSetup: func(m *mocks.MockStore) {
				m.EXPECT().FetchKnowledgeBase(gomock.Any(), "Physics").
					Return(storage.Lookup[storage.KnowledgeBase]{Value: storage.VoidKnowledgeBase, Status: storage.NotFound}, nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:  "duplicate rows",
			param: "Math",
			mockSetup: func(m *mocks.MockStore) {
				m.EXPECT().FetchKnowledgeBase(gomock.Any(), "Math").
					Return(storage.Lookup[storage.KnowledgeBase]{}, storage.ErrDuplicateKey)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "empty name",
			param:      "",
			mockSetup:  func(m *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockStore(ctrl)
			tt.mockSetup(mockStore)
			handler := NewKnowledgeBaseHandler(mockStore, validator.New())

			w := httptest.NewRecorder()
			target := tt.target
			if target == "" {
				target = "/"
			}
			handler.Get(w, newRequest(http.MethodGet, target, "", map[string]string{"name": tt.param}))

			if w.Code != tt.wantStatus {
				t.Errorf("Get() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestKnowledgeBaseHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().FetchAllKnowledgeBases(gomock.Any()).
		Return([]storage.KnowledgeBase{{ID: 1, Name: "Math"}, {ID: 2, Name: "Art"}}, nil)

	w := httptest.NewRecorder()
	NewKnowledgeBaseHandler(mockStore, validator.New()).List(w, newRequest(http.MethodGet, "/", "", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("List() status = %v, want 200", w.Code)
	}
	var resp []KnowledgeBaseResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 || resp[1].Name != "Art" {
		t.Errorf("List() response = %+v", resp)
	}
}

func TestKnowledgeBaseHandler_Rename(t *testing.T) {
	found := storage.Lookup[storage.KnowledgeBase]{Value: storage.KnowledgeBase{ID: 3, Name: "Math"}, Status: storage.Found}

	tests := []struct {
		name       string
		body       string
		mockSetup  func(*mocks.MockStore)
		wantStatus int
	}{
		{
			name: "renamed",
			body: `{"name":"Geometry"}`,
			mockSetup: func(m *mocks.MockStore) {
				m.EXPECT().FetchKnowledgeBase(gomock.Any(), "Math").Return(found, nil)
				m.EXPECT().ContainsKnowledgeBase(gomock.Any(), "Geometry").Return(false, nil)
				m.EXPECT().UpdateKnowledgeBase(gomock.Any(), &storage.KnowledgeBase{ID: 3, Name: "Geometry"}).
					Return(&storage.KnowledgeBase{ID: 3, Name: "Geometry"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "target name taken",
			body: `{"name":"Art"}`,
			mockSetup: func(m *mocks.MockStore) {
				m.EXPECT().FetchKnowledgeBase(gomock.Any(), "Math").Return(found, nil)
				m.EXPECT().ContainsKnowledgeBase(gomock.Any(), "Art").Return(true, nil)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "missing knowledge base",
			body: `{"name":"Geometry"}`,
			mockSetup: func(m *mocks.MockStore) {
				m.EXPECT().FetchKnowledgeBase(gomock.Any(), "Math").
					Return(storage.Lookup[storage.KnowledgeBase]{Value: storage.VoidKnowledgeBase, Status: storage.NotFound}, nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "update failed",
			body: `{"name":"Geometry"}`,
			mockSetup: func(m *mocks.MockStore) {
				m.EXPECT().FetchKnowledgeBase(gomock.Any(), "Math").Return(found, nil)
				m.EXPECT().ContainsKnowledgeBase(gomock.Any(), "Geometry").Return(false, nil)
				m.EXPECT().UpdateKnowledgeBase(gomock.Any(), gomock.Any()).Return(nil, storage.ErrUpdateFailed)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockStore(ctrl)
			tt.mockSetup(mockStore)
			handler := NewKnowledgeBaseHandler(mockStore, validator.New())

			w := httptest.NewRecorder()
			handler.Rename(w, newRequest(http.MethodPut, "/", tt.body, map[string]string{"name": "Math"}))

			if w.Code != tt.wantStatus {
				t.Errorf("Rename() status = %v, want %v (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestKnowledgeBaseHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		deleted    storage.KnowledgeBase
		err        error
		wantStatus int
	}{
		{name: "deleted", deleted: storage.KnowledgeBase{ID: 1, Name: "Math"}, wantStatus: http.StatusNoContent},
		{name: "missing is a no-op", deleted: storage.VoidKnowledgeBase, wantStatus: http.StatusNoContent},
		{name: "delete failed", deleted: storage.VoidKnowledgeBase, err: fmt.Errorf("delete knowledge base \"Math\" affected 0 rows: %w", storage.ErrDeleteFailed), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockStore(ctrl)
			mockStore.EXPECT().DeleteKnowledgeBase(gomock.Any(), "Math").Return(tt.deleted, tt.err)

			w := httptest.NewRecorder()
			NewKnowledgeBaseHandler(mockStore, validator.New()).
				Delete(w, newRequest(http.MethodDelete, "/", "", map[string]string{"name": "Math"}))

			if w.Code != tt.wantStatus {
				t.Errorf("Delete() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestKnowledgeBaseHandler_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStore.EXPECT().FetchKnowledgeBase(gomock.Any(), "Math").
		Return(storage.Lookup[storage.KnowledgeBase]{Value: storage.KnowledgeBase{ID: 1, Name: "Math"}, Status: storage.Found}, nil)
	mockStore.EXPECT().FetchNotes(gomock.Any(), "Math").
		Return([]storage.Note{{ID: 4, Title: "Triangle", Content: "three sides", Directory: "Math"}}, nil)

	w := httptest.NewRecorder()
	NewKnowledgeBaseHandler(mockStore, validator.New()).
		Export(w, newRequest(http.MethodGet, "/", "", map[string]string{"name": "Math"}))

	if w.Code != http.StatusOK {
		t.Fatalf("Export() status = %v, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/yaml" {
		t.Errorf("Export() Content-Type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "title: Triangle") {
		t.Errorf("Export() body = %s", w.Body.String())
	}
}
