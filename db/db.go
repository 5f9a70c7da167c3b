package db

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/ScottMorse/Music-Tools/constants"
	"github.com/ScottMorse/Music-Tools/scale"
	"github.com/ScottMorse/Music-Tools/theory"
)

// GetModeDefs batch-fetches user-defined mode definitions by name. An item
// holds either a Steps list (with optional LetterSteps and Prefer) or a
// Parent name plus Rotation. Names missing from the table are simply
// absent from the result.
func GetModeDefs(names []string) (map[string]scale.Definition, error) {
	res := make(map[string]scale.Definition)
	if len(names) == 0 {
		return res, nil
	}
	if len(names) > 10 {
		return nil, fmt.Errorf("cannot fetch more than 10 mode definitions at once")
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range names {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(name)},
		})
	}

	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetDynamoRegion()),
		Endpoint: aws.String(constants.GetDynamoEndpoint()),
	})
	if err != nil {
		return nil, fmt.Errorf("create DynamoDB session: %w", err)
	}

	table := constants.GetModeTable()
	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	out, err := client.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("batch get mode definitions: %w", err)
	}

	for _, item := range out.Responses[table] {
		name := aws.StringValue(item["PK"].S)
		def, err := parseItem(item)
		if err != nil {
			return nil, fmt.Errorf("mode %q: %w", name, err)
		}
		res[name] = def
	}
	return res, nil
}

func parseItem(item map[string]*dynamodb.AttributeValue) (scale.Definition, error) {
	var def scale.Definition

	if v, ok := item["Parent"]; ok && v.S != nil {
		def.Parent = aws.StringValue(v.S)
		rotation, err := numberAttr(item["Rotation"])
		if err != nil {
			return def, fmt.Errorf("rotation: %w", err)
		}
		def.Rotation = rotation
		return def, nil
	}

	steps, err := numberList(item["Steps"])
	if err != nil {
		return def, fmt.Errorf("steps: %w", err)
	}
	def.Steps = steps

	if v, ok := item["LetterSteps"]; ok {
		letters, err := numberList(v)
		if err != nil {
			return def, fmt.Errorf("letter steps: %w", err)
		}
		def.LetterSteps = letters
	}
	if v, ok := item["Prefer"]; ok && v.S != nil {
		switch aws.StringValue(v.S) {
		case "sharp":
			def.Prefer = theory.PreferSharp
		case "flat":
			def.Prefer = theory.PreferFlat
		default:
			return def, fmt.Errorf("unknown prefer %q", aws.StringValue(v.S))
		}
	}
	return def, nil
}

func numberAttr(v *dynamodb.AttributeValue) (int, error) {
	if v == nil || v.N == nil {
		return 0, fmt.Errorf("missing number attribute")
	}
	return strconv.Atoi(aws.StringValue(v.N))
}

func numberList(v *dynamodb.AttributeValue) ([]int, error) {
	if v == nil || v.L == nil {
		return nil, fmt.Errorf("missing list attribute")
	}
	nums := make([]int, 0, len(v.L))
	for _, entry := range v.L {
		n, err := numberAttr(entry)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}
