// Command xor trains a small Network to compute exclusive-or, reporting its progress as it goes.
// The Network can be saved to and resumed from a file or a SQLite checkpoint database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/pkg/errors"

	nn "github.com/LazureLeming/object-oriented-neural-network"
	"github.com/LazureLeming/object-oriented-neural-network/costfuncs"
	"github.com/LazureLeming/object-oriented-neural-network/hyperparams"
	"github.com/LazureLeming/object-oriented-neural-network/initializers"
	"github.com/LazureLeming/object-oriented-neural-network/persist"
	"github.com/LazureLeming/object-oriented-neural-network/store"
	"github.com/LazureLeming/object-oriented-neural-network/trainer"
)

// the outputs are one per class: {1, 0} for false and {0, 1} for true
var dataset = []trainer.Datum{
	{Inputs: []float64{0, 0}, Outputs: []float64{1, 0}},
	{Inputs: []float64{0, 1}, Outputs: []float64{0, 1}},
	{Inputs: []float64{1, 0}, Outputs: []float64{0, 1}},
	{Inputs: []float64{1, 1}, Outputs: []float64{1, 0}},
}

func parseHidden(str string) ([]int, error) {
	if str == "" {
		return nil, nil
	}

	var sizes []int
	for _, s := range strings.Split(str, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, errors.Wrapf(err, "Bad hidden layer size %q\n", s)
		}
		sizes = append(sizes, n)
	}

	return sizes, nil
}

// setInitBounds sets the range that the initial weights and biases of new Networks are drawn from
func setInitBounds(lower, upper float64) error {
	if !(lower < upper) {
		return errors.Errorf("Bad initial weight range [%v, %v)", lower, upper)
	}

	if err := nn.SetDefault("weight-lower", lower); err != nil {
		return err
	}

	return nn.SetDefault("weight-upper", upper)
}

func main() {
	epochs := flag.Int("epochs", 5000, "number of epochs to train for")
	rate := flag.Float64("rate", 0.5, "learning rate")
	steps := flag.String("steps", "", "changes to the learning rate, as epoch:rate,epoch:rate")
	seed := flag.Int64("seed", nn.DefaultSeed, "seed for the initial weights and the shuffling of examples")
	hidden := flag.String("hidden", "8", "comma-separated sizes of the hidden layers")
	initLower := flag.Float64("init-lower", -0.1, "lower bound of the initial weights and biases")
	initUpper := flag.Float64("init-upper", 0.1, "upper bound (exclusive) of the initial weights and biases")
	workers := flag.Int("workers", 0, "goroutines per layer (0 for one per logical core)")
	report := flag.Int("report", 500, "print the cost every this many epochs")
	cost := flag.String("cost", "half-sse", "cost function to report, one of: "+strings.Join(costfuncs.Names(), ", "))
	eval := flag.Bool("eval", false, "evaluate the network after every epoch")
	load := flag.String("load", "", "resume from a network saved in this file")
	save := flag.String("save", "", "save the trained network to this file")
	db := flag.String("db", "", "sqlite database of checkpoints to resume from and save to")
	name := flag.String("name", "xor", "name of the checkpoint in the database")
	flag.Parse()

	ctx := context.Background()

	fmt.Printf("CPU: %s, %d logical cores\n", cpuid.CPU.BrandName, cpuid.CPU.LogicalCores)

	cf, err := costfuncs.Get(*cost)
	if err != nil {
		log.Fatal(err)
	}

	schedule, err := hyperparams.ParseStep(*rate, *steps)
	if err != nil {
		log.Fatal(err)
	}

	var checkpoints *store.Store
	if *db != "" {
		if checkpoints, err = store.Open(*db); err != nil {
			log.Fatal(err)
		}
		defer checkpoints.Close()
	}

	var net *nn.Network
	switch {
	case *load != "":
		if net, err = persist.Load(*load); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Loaded network %v from %s\n", net.ID(), *load)
	case checkpoints != nil:
		net, err = checkpoints.Get(ctx, *name)
		if err != nil && errors.Cause(err) != store.ErrNotFound {
			log.Fatal(err)
		} else if err == nil {
			fmt.Printf("Resuming network %v from checkpoint %q\n", net.ID(), *name)
		}
	}

	if net == nil {
		sizes, err := parseHidden(*hidden)
		if err != nil {
			log.Fatal(err)
		}

		if err = setInitBounds(*initLower, *initUpper); err != nil {
			log.Fatal(err)
		}

		fmt.Println("Setting up network...")
		net, err = nn.New(nn.Config{
			Inputs:  2,
			Outputs: 2,
			Hidden:  sizes,
			RNG:     initializers.Uniform(*seed),
			Workers: *workers,
		})
		if err != nil {
			log.Fatal(err)
		}
	} else {
		net.SetWorkers(*workers)
	}

	fmt.Printf("Layers: %v, workers: %d\n", net.LayerSizes(), net.Workers())

	var test float64
	tr, err := trainer.New(trainer.Args{
		Network:      net,
		Training:     trainer.NewSet(dataset...),
		Testing:      trainer.NewSet(dataset...),
		Epochs:       *epochs,
		LearningRate: *rate,
		Schedule:     schedule,
		Seed:         *seed,
		Cost:         cf,
		Update: func(r trainer.Result) {
			if r.IsTest {
				test = r.Accuracy
			} else if *report > 0 && r.Epoch%*report == 0 {
				if *eval {
					fmt.Printf("%d, %.6f, %.2f\n", r.Epoch, r.Cost, test)
				} else {
					fmt.Printf("%d, %.6f\n", r.Epoch, r.Cost)
				}
			}
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Starting training...")
	if *eval {
		fmt.Println("Epoch, Cost, Previous Accuracy")
		_, _, err = tr.TrainWithEvaluation()
	} else {
		fmt.Println("Epoch, Cost")
		_, err = tr.Run()
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Done training!")

	ev, err := tr.Evaluate()
	if err != nil {
		log.Fatal(err)
	}

	for _, d := range dataset {
		outs, err := tr.Network().CalculateResponse(d.Inputs)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%v → %.4f (class %d)\n", d.Inputs, outs, nn.ArgMax(outs))
	}

	for _, m := range ev.Mismatches {
		fmt.Printf("Wrong: %v gave class %d, expected %d\n", m.Inputs, m.Got, m.Expected)
	}
	fmt.Printf("Accuracy: %.2f\n", ev.Accuracy)

	if *save != "" {
		fmt.Println("Saving...")
		if err = tr.SaveFile(*save); err != nil {
			log.Fatal(err)
		}
	}

	if checkpoints != nil {
		fmt.Printf("Saving checkpoint %q...\n", *name)
		if err = checkpoints.Put(ctx, *name, tr.Network()); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("Done!")
}
