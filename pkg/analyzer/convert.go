package analyzer

import (
	"github.com/crosscheck-ai/crosscheck/pkg/docgraph"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// FromTextract converts Textract wire blocks into graph blocks. Unknown block
// types are dropped; absent fields degrade to zero values and are handled by
// the reducer's tolerance rules.
func FromTextract(blocks []types.Block) []docgraph.Block {
	result := make([]docgraph.Block, 0, len(blocks))

	for _, b := range blocks {
		id := aws.ToString(b.Id)

		switch b.BlockType {
		case types.BlockTypeLine:
			line := docgraph.Line{
				ID:   id,
				Text: aws.ToString(b.Text),
			}

			if b.Geometry != nil && b.Geometry.BoundingBox != nil {
				line.Top = float64(b.Geometry.BoundingBox.Top)
				line.Left = float64(b.Geometry.BoundingBox.Left)
			}

			result = append(result, line)

		case types.BlockTypeWord:
			result = append(result, docgraph.Word{
				ID:   id,
				Text: aws.ToString(b.Text),
			})

		case types.BlockTypeTable:
			result = append(result, docgraph.Table{
				ID:       id,
				Children: relationIDs(b, types.RelationshipTypeChild),
			})

		case types.BlockTypeCell:
			result = append(result, docgraph.Cell{
				ID:       id,
				Text:     aws.ToString(b.Text),
				Row:      int(aws.ToInt32(b.RowIndex)),
				Column:   int(aws.ToInt32(b.ColumnIndex)),
				Children: relationIDs(b, types.RelationshipTypeChild),
			})

		case types.BlockTypeKeyValueSet:
			kv := docgraph.KeyValueSet{
				ID:       id,
				Children: relationIDs(b, types.RelationshipTypeChild),
				Values:   relationIDs(b, types.RelationshipTypeValue),
			}

			for _, role := range b.EntityTypes {
				switch role {
				case types.EntityTypeKey:
					kv.Role = docgraph.RoleKey

				case types.EntityTypeValue:
					kv.Role = docgraph.RoleValue
				}
			}

			result = append(result, kv)
		}
	}

	return result
}

func relationIDs(b types.Block, relation types.RelationshipType) []string {
	var ids []string

	for _, r := range b.Relationships {
		if r.Type != relation {
			continue
		}

		ids = append(ids, r.Ids...)
	}

	return ids
}
