package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func createTempDir(t *testing.T) string {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "i18n-test")
	if err != nil {
		t.Fatalf("no se pudo crear el directorio temporal: %v", err)
	}
	return tmpDir
}

func createTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("no se pudo crear el archivo de prueba: %v", err)
	}
}

func TestNewTranslations(t *testing.T) {
	t.Run("Should successfully create translations with valid language", func(t *testing.T) {
		// Arrange
		tmpDir := createTempDir(t)
		defer os.RemoveAll(tmpDir)

		createTestFile(t, tmpDir, "active.es.toml", `
		[skip.existing_description]
		other = "El PR #{{.Number}} ya tiene descripción, no se hace nada"
		`)

		// act
		trans, err := NewTranslations("es", tmpDir)

		// assert
		if err != nil {
			t.Errorf("NewTranslations() no debería retornar error, obtuvo: %v", err)
		}

		if trans == nil {
			t.Error("NewTranslations() no debería retornar nil")
		}
	})

	t.Run("Should fail with empty language", func(t *testing.T) {
		// arrange
		tmpDir := createTempDir(t)
		defer os.RemoveAll(tmpDir)

		// act
		trans, err := NewTranslations("", tmpDir)

		// assert
		if err == nil {
			t.Error("NewTranslations() debería retornar error con idioma vacío")
		}

		if trans != nil {
			t.Error("NewTranslations() debería retornar nil cuando falla")
		}
	})
}

func TestGetMessage(t *testing.T) {
	t.Run("Should resolve embedded default messages", func(t *testing.T) {
		tmpDir := createTempDir(t)
		defer os.RemoveAll(tmpDir)

		trans, err := NewTranslations("en", tmpDir)
		if err != nil {
			t.Fatalf("NewTranslations() falló: %v", err)
		}

		msg := trans.GetMessage("skip.author_not_allowed", 0, map[string]interface{}{
			"Author": "octocat",
		})

		if msg != "Pull request author octocat is not allowed to trigger this action" {
			t.Errorf("mensaje inesperado: %q", msg)
		}
	})

	t.Run("Should return placeholder for missing message", func(t *testing.T) {
		tmpDir := createTempDir(t)
		defer os.RemoveAll(tmpDir)

		trans, err := NewTranslations("en", tmpDir)
		if err != nil {
			t.Fatalf("NewTranslations() falló: %v", err)
		}

		msg := trans.GetMessage("does.not.exist", 0, nil)
		if msg != "Translation missing: does.not.exist" {
			t.Errorf("mensaje inesperado: %q", msg)
		}
	})
}

func TestSetLanguage(t *testing.T) {
	t.Run("Should change to a valid language", func(t *testing.T) {
		tmpDir := createTempDir(t)
		defer os.RemoveAll(tmpDir)

		createTestFile(t, tmpDir, "active.es.toml", `[jira.skipped]
		other = "Jira no configurado, se omite el ticket"`)

		trans, err := NewTranslations("en", tmpDir)
		if err != nil {
			t.Fatalf("NewTranslations() falló: %v", err)
		}

		if err := trans.SetLanguage("es"); err != nil {
			t.Errorf("SetLanguage() no debería fallar: %v", err)
		}
	})

	t.Run("Should fail with unsupported language", func(t *testing.T) {
		tmpDir := createTempDir(t)
		defer os.RemoveAll(tmpDir)

		trans, err := NewTranslations("en", tmpDir)
		if err != nil {
			t.Fatalf("NewTranslations() falló: %v", err)
		}

		if err := trans.SetLanguage("xx"); err == nil {
			t.Error("SetLanguage() debería fallar con un idioma no soportado")
		}
	})
}
