package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/schedlab/makespan"
)

var (
	output  = fmt.Print
	outputf = fmt.Printf
)

func main() {
	err := getApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func getApp() *cli.App {
	app := &cli.App{
		Name:  "makespan",
		Usage: "evaluate the realized makespan of a job-to-machine assignment",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "driver",
				Aliases: []string{"d"},
				Usage:   "Database driver for persisting evaluations (mysql, postgres, clickhouse)",
			},
			&cli.StringFlag{
				Name:  "dsn",
				Usage: "Database DSN, used together with --driver",
			},
			&cli.BoolFlag{
				Name:  "profile",
				Usage: "Write a CPU profile for the command",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "eval",
				Usage: "Evaluate a schedule description file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Load the schedule from `FILE`",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "policy",
						Aliases: []string{"p"},
						Value:   string(makespan.PolicyOrdered),
						Usage:   "Predecessor policy, Ordered or Bin",
					},
					&cli.BoolFlag{
						Name:  "parallel",
						Usage: "Evaluate machine partitions concurrently",
					},
				},
				Action: evalAction,
			},
			{
				Name:  "bench",
				Usage: "Evaluate generated benchmark workloads",
				Flags: []cli.Flag{
					&cli.IntSliceFlag{
						Name:    "size",
						Aliases: []string{"n"},
						Value:   cli.NewIntSlice(4, 8, 16),
						Usage:   "Workload sizes to generate and evaluate",
					},
				},
				Action: benchAction,
			},
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	return app
}

// scheduleFile is the on-disk schedule description: the assignment plus
// the flat tabular time data, numbers kept untyped so hand-written and
// optimizer-emitted files both load.
type scheduleFile struct {
	Jobs []struct {
		Name      string  `json:"name"`
		Machine   string  `json:"machine"`
		StartTime float64 `json:"start_time"`
		Quantity  int     `json:"quantity"`
	} `json:"jobs"`
	Machines        []string    `json:"machines"`
	JobOrder        []string    `json:"job_order"`
	ProcessingTimes interface{} `json:"processing_times"`
	SetupTimes      interface{} `json:"setup_times"`
}

func evalAction(c *cli.Context) error {
	if c.Bool("profile") {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	policy, err := makespan.ParsePolicy(c.String("policy"))
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return err
	}
	var f scheduleFile
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	processing, err := makespan.ParseProcessingRows(f.ProcessingTimes)
	if err != nil {
		return err
	}
	setup, err := makespan.ParseSetupRows(f.SetupTimes)
	if err != nil {
		return err
	}

	machines := make([]makespan.MachineID, 0, len(f.Machines))
	for _, m := range f.Machines {
		machine, err := makespan.ParseMachineID(m)
		if err != nil {
			return err
		}
		machines = append(machines, machine)
	}

	jobOrder := make([]makespan.JobName, 0, len(f.JobOrder))
	for _, n := range f.JobOrder {
		name, err := makespan.ParseJobName(n)
		if err != nil {
			return err
		}
		jobOrder = append(jobOrder, name)
	}

	s := makespan.NewSchedule(policy)
	for _, j := range f.Jobs {
		name, err := makespan.ParseJobName(j.Name)
		if err != nil {
			return err
		}
		machine, err := makespan.ParseMachineID(j.Machine)
		if err != nil {
			return err
		}
		s = s.AddJob(makespan.NewJob(name, machine, j.StartTime, j.Quantity))
	}
	if err := s.Validate(machines); err != nil {
		return err
	}

	options := []makespan.Option{}
	if c.Bool("parallel") {
		options = append(options, makespan.WithParallel())
	}
	if driver := c.String("driver"); driver != "" {
		db, err := makespan.OpenDatabase(driver, c.String("dsn"))
		if err != nil {
			return err
		}
		options = append(options, makespan.WithDatabase(db))
	}

	evaluator := makespan.NewEvaluator(options...)
	inst := makespan.NewLPInstance(jobOrder, machines)
	ev, err := evaluator.Evaluate(context.Background(), &s, processing, setup, inst)
	if err != nil {
		return err
	}

	outputf("makespan %.6f\n", ev.Makespan)
	for _, machine := range machines {
		if finish, ok := ev.MachineFinish[machine]; ok {
			outputf("  %s %.6f\n", machine, finish)
		}
	}
	return nil
}

func benchAction(c *cli.Context) error {
	if c.Bool("profile") {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	cache := makespan.NewWorkloadCache()
	for _, size := range c.IntSlice("size") {
		w, err := cache.Get(size)
		if err != nil {
			return err
		}

		jobs := make([]makespan.Job, len(w.Jobs))
		copy(jobs, w.Jobs)
		binMakespan, err := makespan.EvaluateBinSchedule(jobs, w.Processing, w.Setup, w.Accelerators)
		if err != nil {
			return err
		}

		copy(jobs, w.Jobs)
		orderedMakespan, err := makespan.EvaluateOrderedSchedule(jobs, w.Processing, w.Setup, w.JobOrder(), w.Machines)
		if err != nil {
			return err
		}

		outputf("size %d ordered %.2f bin %.2f\n", size, orderedMakespan, binMakespan)
	}
	return nil
}
