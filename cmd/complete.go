package cmd

import (
	"flag"

	"github.com/etnz/realty"
	"github.com/etnz/realty/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of pms, built from the
// registered subcommands and their flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors("", flag.CommandLine),
	}
	for _, cmds := range Commands {
		for _, c := range cmds {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			root.Sub[c.Name()] = &complete.Command{
				Flags: flagPredictors(c.Name(), fs),
				Args:  argPredictor(c.Name()),
			}
		}
	}
	return root
}

func flagPredictors(command string, fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = flagPredictor(command, f.Name)
	})
	return flags
}

func flagPredictor(command, name string) complete.Predictor {
	switch {
	case name == "env":
		return predict.Files(".env*")
	case name == "driver":
		return predict.Set{"sqlite", "postgres"}
	case name == "income":
		return predict.Set{"embedded", "standalone"}
	case name == "p":
		return predict.Set{"day", "week", "month", "quarter", "year"}
	case name == "location":
		return enumSet(realty.Regions)
	case name == "payment":
		return enumSet(realty.PaymentStatuses)
	case name == "f":
		return predict.Files("*.json")
	case name == "o":
		return predict.Files("*.csv")
	case command == "documents" && name == "category", command == "attach" && name == "type":
		return enumSet(realty.DocumentTypes)
	case name == "category", command == "add-property" && name == "type":
		return enumSet(realty.PropertyTypes)
	case command != "pay" && command != "schedule" && name == "lease":
		return predict.Set{"leased", "vacant"}
	}
	return predict.Something
}

func argPredictor(command string) complete.Predictor {
	switch command {
	case "import":
		return predict.Files("*.json")
	case "admin":
		return predict.Set{"reset", "clear"}
	case "topic":
		topics, err := docs.GetAllTopics()
		if err != nil {
			return predict.Nothing
		}
		return predict.Set(topics)
	}
	return predict.Nothing
}

func enumSet[T ~string](values []T) predict.Set {
	set := make(predict.Set, len(values))
	for i, v := range values {
		set[i] = string(v)
	}
	return set
}
