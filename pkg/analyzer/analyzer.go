package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crosscheck-ai/crosscheck/pkg/docgraph"
	"github.com/crosscheck-ai/crosscheck/pkg/tool"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/google/uuid"
)

var _ tool.Tool = (*Analyzer)(nil)

const tempBucketPrefix = "textract-temp-"

type TextractAPI interface {
	AnalyzeDocument(ctx context.Context, params *textract.AnalyzeDocumentInput, optFns ...func(*textract.Options)) (*textract.AnalyzeDocumentOutput, error)
}

type StorageAPI interface {
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	DeleteBucket(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error)
}

// Analyzer stages documents in S3, analyzes them with Textract and reduces
// the block graphs into a combined markdown report.
type Analyzer struct {
	region string
	bucket string

	textract TextractAPI
	storage  StorageAPI
}

type Option func(*Analyzer)

func WithRegion(region string) Option {
	return func(a *Analyzer) {
		a.region = region
	}
}

// WithBucket sets a pre-existing bucket for document staging. Without it, a
// temporary bucket is created per run and deleted afterwards.
func WithBucket(bucket string) Option {
	return func(a *Analyzer) {
		a.bucket = bucket
	}
}

func WithClients(textract TextractAPI, storage StorageAPI) Option {
	return func(a *Analyzer) {
		a.textract = textract
		a.storage = storage
	}
}

func New(ctx context.Context, options ...Option) (*Analyzer, error) {
	a := &Analyzer{
		region: "us-east-1",
	}

	for _, option := range options {
		option(a)
	}

	if a.textract == nil || a.storage == nil {
		cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(a.region))

		if err != nil {
			return nil, err
		}

		a.textract = textract.NewFromConfig(cfg)
		a.storage = s3.NewFromConfig(cfg)
	}

	return a, nil
}

func (a *Analyzer) Name() string {
	return "textract_document_analyzer"
}

func (a *Analyzer) Description() string {
	return "Analyzes invoice and purchase order documents using Amazon Textract to extract structured data " +
		"including text, tables, forms, and key-value pairs. Preserves document structure and formatting " +
		"much better than basic OCR. Returns detailed analysis with tables, forms, and text content " +
		"organized by document sections."
}

// Run analyzes the invoice and purchase order named by the inputs and returns
// the combined report. Every failure mode is reported as an "Error ..."
// string; the result is always usable as prompt text.
func (a *Analyzer) Run(ctx context.Context, inputs map[string]string) string {
	invoicePath := inputs["invoice_file_path"]
	poPath := inputs["po_file_path"]

	if _, err := os.Stat(invoicePath); err != nil {
		return fmt.Sprintf("Error: Invoice file not found at path: %s", invoicePath)
	}

	if _, err := os.Stat(poPath); err != nil {
		return fmt.Sprintf("Error: PO file not found at path: %s", poPath)
	}

	bucket := a.bucket

	if bucket == "" {
		bucket = tempBucketPrefix + uuid.NewString()[:8]

		if err := a.createBucket(ctx, bucket); err != nil {
			return fmt.Sprintf("Error creating S3 bucket: %s", err)
		}
	}

	invoiceKey := "invoice_" + uuid.NewString()[:8] + filepath.Ext(invoicePath)
	poKey := "po_" + uuid.NewString()[:8] + filepath.Ext(poPath)

	// Uploaded documents are removed even when analysis fails; cleanup
	// failures never surface.
	defer a.cleanup(context.WithoutCancel(ctx), bucket, invoiceKey, poKey)

	if err := a.upload(ctx, bucket, invoiceKey, invoicePath); err != nil {
		return fmt.Sprintf("Error uploading files to S3: %s", err)
	}

	if err := a.upload(ctx, bucket, poKey, poPath); err != nil {
		return fmt.Sprintf("Error uploading files to S3: %s", err)
	}

	invoiceBlocks, err := a.analyze(ctx, bucket, invoiceKey)

	if err != nil {
		return fmt.Sprintf("Error analyzing documents with Textract: %s", err)
	}

	poBlocks, err := a.analyze(ctx, bucket, poKey)

	if err != nil {
		return fmt.Sprintf("Error analyzing documents with Textract: %s", err)
	}

	invoiceReport := docgraph.New(FromTextract(invoiceBlocks)).Report("INVOICE")
	poReport := docgraph.New(FromTextract(poBlocks)).Report("PURCHASE ORDER")

	return docgraph.CombineReports(invoiceReport, poReport)
}

func (a *Analyzer) createBucket(ctx context.Context, bucket string) error {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}

	if a.region != "us-east-1" {
		input.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(a.region),
		}
	}

	_, err := a.storage.CreateBucket(ctx, input)

	var owned *s3types.BucketAlreadyOwnedByYou

	if errors.As(err, &owned) {
		return nil
	}

	return err
}

func (a *Analyzer) upload(ctx context.Context, bucket, key, path string) error {
	f, err := os.Open(path)

	if err != nil {
		return err
	}

	defer f.Close()

	_, err = a.storage.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   f,
	})

	return err
}

func (a *Analyzer) analyze(ctx context.Context, bucket, key string) ([]types.Block, error) {
	resp, err := a.textract.AnalyzeDocument(ctx, &textract.AnalyzeDocumentInput{
		Document: &types.Document{
			S3Object: &types.S3Object{
				Bucket: aws.String(bucket),
				Name:   aws.String(key),
			},
		},

		FeatureTypes: []types.FeatureType{
			types.FeatureTypeTables,
			types.FeatureTypeForms,
		},
	})

	if err != nil {
		return nil, err
	}

	return resp.Blocks, nil
}

func (a *Analyzer) cleanup(ctx context.Context, bucket string, keys ...string) {
	for _, key := range keys {
		a.storage.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
	}

	if strings.HasPrefix(bucket, tempBucketPrefix) {
		a.storage.DeleteBucket(ctx, &s3.DeleteBucketInput{
			Bucket: aws.String(bucket),
		})
	}
}
