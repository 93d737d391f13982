package analyzer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crosscheck-ai/crosscheck/pkg/analyzer"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/stretchr/testify/require"
)

type fakeTextract struct {
	blocks []types.Block
	err    error

	analyzed []string
}

func (f *fakeTextract) AnalyzeDocument(ctx context.Context, params *textract.AnalyzeDocumentInput, optFns ...func(*textract.Options)) (*textract.AnalyzeDocumentOutput, error) {
	f.analyzed = append(f.analyzed, aws.ToString(params.Document.S3Object.Name))

	if f.err != nil {
		return nil, f.err
	}

	return &textract.AnalyzeDocumentOutput{Blocks: f.blocks}, nil
}

type fakeStorage struct {
	created        []string
	uploaded       []string
	deletedObjects []string
	deletedBuckets []string
}

func (f *fakeStorage) CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.created = append(f.created, aws.ToString(params.Bucket))
	return &s3.CreateBucketOutput{}, nil
}

func (f *fakeStorage) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.uploaded = append(f.uploaded, aws.ToString(params.Key))
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeStorage) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletedObjects = append(f.deletedObjects, aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeStorage) DeleteBucket(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error) {
	f.deletedBuckets = append(f.deletedBuckets, aws.ToString(params.Bucket))
	return &s3.DeleteBucketOutput{}, nil
}

func writeTempDocs(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()

	invoice := filepath.Join(dir, "invoice.pdf")
	po := filepath.Join(dir, "po.pdf")

	require.NoError(t, os.WriteFile(invoice, []byte("%PDF-1.4"), 0644))
	require.NoError(t, os.WriteFile(po, []byte("%PDF-1.4"), 0644))

	return invoice, po
}

func totalBlocks() []types.Block {
	return []types.Block{
		{
			BlockType:   types.BlockTypeKeyValueSet,
			Id:          aws.String("k1"),
			EntityTypes: []types.EntityType{types.EntityTypeKey},
			Relationships: []types.Relationship{
				{Type: types.RelationshipTypeChild, Ids: []string{"w1"}},
				{Type: types.RelationshipTypeValue, Ids: []string{"v1"}},
			},
		},
		{
			BlockType:   types.BlockTypeKeyValueSet,
			Id:          aws.String("v1"),
			EntityTypes: []types.EntityType{types.EntityTypeValue},
			Relationships: []types.Relationship{
				{Type: types.RelationshipTypeChild, Ids: []string{"w2"}},
			},
		},
		{BlockType: types.BlockTypeWord, Id: aws.String("w1"), Text: aws.String("Total")},
		{BlockType: types.BlockTypeWord, Id: aws.String("w2"), Text: aws.String("$500.00")},
	}
}

func TestRun(t *testing.T) {
	invoice, po := writeTempDocs(t)

	tx := &fakeTextract{blocks: totalBlocks()}
	st := &fakeStorage{}

	a, err := analyzer.New(t.Context(), analyzer.WithClients(tx, st))
	require.NoError(t, err)

	result := a.Run(t.Context(), map[string]string{
		"invoice_file_path": invoice,
		"po_file_path":      po,
	})

	require.Contains(t, result, "# INVOICE DOCUMENT ANALYSIS")
	require.Contains(t, result, "# PURCHASE ORDER DOCUMENT ANALYSIS")
	require.Contains(t, result, "**Total:** $500.00")

	require.Len(t, st.created, 1)
	require.True(t, strings.HasPrefix(st.created[0], "textract-temp-"))

	require.Len(t, st.uploaded, 2)
	require.Len(t, tx.analyzed, 2)

	// Staged objects and the generated bucket are removed afterwards.
	require.ElementsMatch(t, st.uploaded, st.deletedObjects)
	require.Equal(t, st.created, st.deletedBuckets)
}

func TestRunConfiguredBucket(t *testing.T) {
	invoice, po := writeTempDocs(t)

	tx := &fakeTextract{blocks: totalBlocks()}
	st := &fakeStorage{}

	a, err := analyzer.New(t.Context(),
		analyzer.WithClients(tx, st),
		analyzer.WithBucket("documents"),
	)

	require.NoError(t, err)

	result := a.Run(t.Context(), map[string]string{
		"invoice_file_path": invoice,
		"po_file_path":      po,
	})

	require.Contains(t, result, "# INVOICE DOCUMENT ANALYSIS")

	require.Empty(t, st.created)
	require.Empty(t, st.deletedBuckets)
	require.Len(t, st.deletedObjects, 2)
}

func TestRunMissingFiles(t *testing.T) {
	_, po := writeTempDocs(t)

	a, err := analyzer.New(t.Context(), analyzer.WithClients(&fakeTextract{}, &fakeStorage{}))
	require.NoError(t, err)

	result := a.Run(t.Context(), map[string]string{
		"invoice_file_path": "/nonexistent/invoice.pdf",
		"po_file_path":      po,
	})

	require.Equal(t, "Error: Invoice file not found at path: /nonexistent/invoice.pdf", result)

	result = a.Run(t.Context(), map[string]string{
		"invoice_file_path": po,
		"po_file_path":      "/nonexistent/po.pdf",
	})

	require.Equal(t, "Error: PO file not found at path: /nonexistent/po.pdf", result)
}

func TestRunAnalysisFailureCleansUp(t *testing.T) {
	invoice, po := writeTempDocs(t)

	tx := &fakeTextract{err: errors.New("throttled")}
	st := &fakeStorage{}

	a, err := analyzer.New(t.Context(), analyzer.WithClients(tx, st))
	require.NoError(t, err)

	result := a.Run(t.Context(), map[string]string{
		"invoice_file_path": invoice,
		"po_file_path":      po,
	})

	require.True(t, strings.HasPrefix(result, "Error analyzing documents with Textract:"))

	require.Len(t, st.deletedObjects, 2)
	require.Len(t, st.deletedBuckets, 1)
}
